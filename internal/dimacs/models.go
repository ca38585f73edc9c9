package dimacs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadModels parses a models fixture file: one satisfying model per line,
// written as DIMACS literals (one per variable, in order, terminated by an
// optional trailing 0), for checking enumeration output against
// precomputed reference models. Blank lines are skipped.
func ReadModels(filename string) ([][]bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var models [][]bool
	scanner := bufio.NewScanner(file)
	for lineNo := 0; scanner.Scan(); {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		model := make([]bool, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("models: line %d: bad literal %q: %w", lineNo, f, err)
			}
			if n == 0 {
				continue
			}
			model = append(model, n > 0)
		}
		models = append(models, model)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models, nil
}
