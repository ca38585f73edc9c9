// Command cdclsat reads a DIMACS CNF instance and reports satisfiability,
// optionally enumerating every model.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/schwering/sat/internal/dimacs"
	"github.com/schwering/sat/internal/sat"
)

var (
	flagEnumerate  = flag.Bool("e", false, "enumerate all models instead of stopping at the first one")
	flagGzip       = flag.Bool("z", false, "treat the input file as gzip-compressed")
	flagCPUProfile = flag.String("cpuprofile", "", "write a CPU profile to this file")
	flagMemProfile = flag.String("memprofile", "", "write a heap profile to this file")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: cdclsat [-e] [-z] [-cpuprofile file] [-memprofile file] <file>")
	}
	filename := flag.Arg(0)

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(filename, *flagEnumerate, *flagGzip); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *flagMemProfile != "" {
		f, err := os.Create(*flagMemProfile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}

func run(filename string, enumerate, gzipped bool) error {
	r, err := dimacs.Open(filename, gzipped)
	if err != nil {
		return err
	}
	defer r.Close()

	s := sat.NewSolver()
	nVars, nClauses, err := dimacs.LoadDIMACS(r, s)
	if err != nil {
		return err
	}
	fmt.Printf("c variables: %d\n", nVars)
	fmt.Printf("c clauses:   %d\n", nClauses)

	for {
		status := s.Solve()
		printStatus(status, s.Stats)

		if status == sat.StatusUnsat {
			return nil
		}
		printModel(s)
		if !enumerate {
			return nil
		}
		s.BlockCurrentModel()
	}
}

func printStatus(status sat.Status, stats sat.Stats) {
	fmt.Printf("%s (in %s s, %s)\n", status, formatSeconds(stats.Elapsed.Seconds()), sat.Version)
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}

func printModel(s *sat.Solver) {
	sb := strings.Builder{}
	for i := 0; i < s.NumVariables(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		lit := strconv.Itoa(i + 1)
		switch s.VarValue(sat.Var(i + 1)) {
		case sat.False:
			lit = "-" + lit
		case sat.Unassigned:
			lit = "!!" + lit + "!!"
		}
		sb.WriteString(lit)
	}
	sb.WriteString(" 0")
	fmt.Println(sb.String())
}
