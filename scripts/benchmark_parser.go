package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string
	DocSize     string
	Iterations  int
	NsPerOp     float64
	MBPerSec    float64
	BytesPerOp  int64
	AllocsPerOp int64
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	// Read benchmark output
	var scanner *bufio.Scanner
	var inputF *os.File
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		inputF = f
		scanner = bufio.NewScanner(f)
	} else {
		scanner = bufio.NewScanner(os.Stdin)
	}

	// Parse benchmarks
	results := parseBenchmarks(scanner)

	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	// Generate markdown report
	report := generateMarkdownReport(results)

	// Write output
	if *outputFile != "" {
		err := os.WriteFile(*outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			if inputF != nil {
				inputF.Close()
			}
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
		}
	} else {
		fmt.Fprint(os.Stdout, report)
	}

	// Close input file if opened
	if inputF != nil {
		inputF.Close()
	}
}

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	// Regex to parse benchmark output lines
	// BenchmarkReadBytes/small-8    10000    12450 ns/op    88.10 MB/s    4096 B/op    8 allocs/op
	benchmarkRegex := regexp.MustCompile(
		`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+([\d.]+)\s+MB/s)?(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
	)

	for scanner.Scan() {
		line := scanner.Text()

		// Try to parse as JSON (from -json flag)
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		// Parse benchmark line
		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var mbPerSec float64
		var bytesPerOp int64
		var allocsPerOp int64

		if matches[4] != "" {
			mbPerSec, _ = strconv.ParseFloat(matches[4], 64)
		}
		if matches[5] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		if matches[6] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[6], 10, 64)
		}

		// Parse name to extract operation and document size
		// Format: Benchmark<Operation>/<size>-<procs>
		// Or: Benchmark<Operation>-<procs> for benchmarks without sub-runs
		operation, docSize := splitBenchmarkName(name)

		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			DocSize:     docSize,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			MBPerSec:    mbPerSec,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

func splitBenchmarkName(name string) (string, string) {
	parts := strings.Split(name, "/")

	operation := strings.TrimPrefix(parts[0], "Benchmark")
	operation = trimProcSuffix(operation)

	docSize := ""
	if len(parts) > 1 {
		docSize = trimProcSuffix(parts[len(parts)-1])
	}

	return operation, docSize
}

// trimProcSuffix removes the -N GOMAXPROCS suffix go test appends.
func trimProcSuffix(s string) string {
	dashIdx := strings.LastIndex(s, "-")
	if dashIdx <= 0 {
		return s
	}
	if _, err := strconv.Atoi(s[dashIdx+1:]); err != nil {
		return s
	}
	return s[:dashIdx]
}

func generateMarkdownReport(results []BenchmarkResult) string {
	var sb strings.Builder

	sb.WriteString("# arxmlkit benchmark report\n\n")

	if len(results) == 0 {
		sb.WriteString("No benchmark results found.\n")
		return sb.String()
	}

	// Group by operation
	grouped := make(map[string][]BenchmarkResult)
	for _, r := range results {
		grouped[r.Operation] = append(grouped[r.Operation], r)
	}
	operations := make([]string, 0, len(grouped))
	for op := range grouped {
		operations = append(operations, op)
	}
	sort.Strings(operations)

	for _, op := range operations {
		sb.WriteString(fmt.Sprintf("## %s\n\n", op))
		sb.WriteString("| Document | ns/op | MB/s | B/op | allocs/op |\n")
		sb.WriteString("|----------|-------|------|------|-----------|\n")

		for _, r := range grouped[op] {
			docSize := r.DocSize
			if docSize == "" {
				docSize = "-"
			}
			throughput := "-"
			if r.MBPerSec > 0 {
				throughput = fmt.Sprintf("%.1f", r.MBPerSec)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %d | %d |\n",
				docSize, formatNs(r.NsPerOp), throughput, r.BytesPerOp, r.AllocsPerOp))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatNs renders a nanosecond count with thousands separators.
func formatNs(ns float64) string {
	s := strconv.FormatInt(int64(ns), 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
