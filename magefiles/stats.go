//go:build mage

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Stats prints Go lines of code per package directory, split into production
// and test code, followed by word counts of the top-level Markdown files.
func Stats() error {
	type counts struct{ prod, test int }
	perDir := map[string]*counts{}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			name := info.Name()
			if path != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
				name == "vendor" || name == binaryDir || name == "magefiles") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		n, countErr := countLines(path)
		if countErr != nil {
			return nil
		}
		dir := filepath.Dir(path)
		c, ok := perDir[dir]
		if !ok {
			c = &counts{}
			perDir[dir] = c
		}
		if strings.HasSuffix(path, "_test.go") {
			c.test += n
		} else {
			c.prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(perDir))
	for d := range perDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	var prod, test int
	fmt.Printf("%-24s %8s %8s\n", "package", "prod", "test")
	for _, d := range dirs {
		c := perDir[d]
		prod += c.prod
		test += c.test
		fmt.Printf("%-24s %8d %8d\n", d, c.prod, c.test)
	}
	fmt.Printf("%-24s %8d %8d\n", "total", prod, test)

	docs, err := filepath.Glob("*.md")
	if err != nil {
		return err
	}
	for _, path := range docs {
		words, wordErr := countWordsInFile(path)
		if wordErr != nil {
			continue
		}
		fmt.Printf("words %-18s %8d\n", path, words)
	}
	return nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}

func countWordsInFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	count := 0
	inWord := false
	for _, r := range string(data) {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count, nil
}
