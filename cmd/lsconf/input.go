package main

import (
	"fmt"
	"io"
	"os"
)

// eachInput reads every named file, or stdin when files is empty or
// names "-", and calls fn with the file's name and contents.
func eachInput(files []string, fn func(name string, data []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		data, err := readInput(file)
		if err != nil {
			return err
		}
		if err := fn(file, data); err != nil {
			return err
		}
	}
	return nil
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return data, nil
}
