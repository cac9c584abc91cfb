package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/josephgoksu/todo/internal/todo"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/viper"
)

// ArgumentError reports malformed command input.
type ArgumentError struct {
	Msg string
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// PrintError writes err to w. By default it prints a short user-facing
// message; with --verbose it prints the full wrapped error chain.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", userMessage(err))
}

// userMessage maps known error kinds to a message without wrapping noise.
func userMessage(err error) string {
	var (
		notFound *todo.NotFoundError
		badTime  *todo.InvalidDateTimeError
		decode   *store.DecodeError
		ioErr    *store.IOError
		argErr   *ArgumentError
	)
	switch {
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &badTime):
		return "invalid date-time: " + badTime.Error()
	case errors.As(err, &decode):
		return fmt.Sprintf("%s is not a valid %s task file (%v)", decode.Path, decode.Format, decode.Err)
	case errors.As(err, &ioErr):
		return fmt.Sprintf("could not %s %s: %v", ioErr.Op, ioErr.Path, ioErr.Err)
	case errors.As(err, &argErr):
		return argErr.Error()
	default:
		return err.Error()
	}
}

// LogError logs a debug message to stderr when verbose mode is on.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}
