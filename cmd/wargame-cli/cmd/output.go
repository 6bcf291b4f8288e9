package cmd

import (
	"encoding/json"
	"fmt"
)

// printResult prints data as JSON or as its text rendering, depending on
// the --json flag, the same text/JSON split the teacher's OutputFormatter
// makes in cmd/cli/cmd/output.go.
func printResult(text string, data any) error {
	if isJSONOutput() {
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("wargame-cli: marshal json: %w", err)
		}
		fmt.Println(string(b))
		return nil
	}
	fmt.Println(text)
	return nil
}
