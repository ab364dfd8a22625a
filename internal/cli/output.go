package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd,
// writing to the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly flags every command supports
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result. Human-readable output is
// left to the caller when human is nil.
func (f *OutputFormatter) Success(data any, human func(w io.Writer) error) error {
	if f.Quiet {
		return f.printIDs(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		return human(f.out())
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// printIDs prints one ID per line for a value, or slice of values, exposing GetID
func (f *OutputFormatter) printIDs(data any) error {
	type identified interface{ GetID() string }

	if v, ok := data.(identified); ok {
		_, err := fmt.Fprintln(f.out(), v.GetID())
		return err
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		return nil
	}
	for i := 0; i < rv.Len(); i++ {
		item, ok := rv.Index(i).Interface().(identified)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(f.out(), item.GetID()); err != nil {
			return err
		}
	}
	return nil
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports an error and returns it with exitCode attached
func (f *OutputFormatter) Fail(exitCode int, code string, err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		return Exit(exitCode, fmt.Errorf("%w (and failed to report it: %v)", err, fmtErr))
	}
	return Exit(exitCode, err)
}
