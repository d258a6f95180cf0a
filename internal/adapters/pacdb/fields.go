package pacdb

import (
	"bufio"
	"io"
	"strings"
)

// parseFields reads the %KEY% blocks of an index description file.
// A key line is followed by value lines up to a blank line or EOF. A key that
// appears twice accumulates values.
func parseFields(r io.Reader) (map[string][]string, error) {
	fields := make(map[string][]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var key string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.TrimSpace(line) == "":
			key = ""
		case key == "" && isKeyLine(line):
			key = line[1 : len(line)-1]
			if _, ok := fields[key]; !ok {
				fields[key] = []string{}
			}
		case key != "":
			fields[key] = append(fields[key], line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

func isKeyLine(line string) bool {
	return len(line) > 2 && line[0] == '%' && line[len(line)-1] == '%'
}

// first returns the first value of key, or "".
func first(fields map[string][]string, key string) string {
	if values := fields[key]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}
