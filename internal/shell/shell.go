package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cipherbox/internal/domain"
	"cipherbox/internal/logging"
	"cipherbox/internal/services/convert"
)

// ExitCommand ends the loop when entered as the text to convert.
const ExitCommand = "exit"

// Shell wires the prompt loop to the conversion, history and adder services.
type Shell struct {
	in        *bufio.Reader
	out       io.Writer
	convert   domain.ConversionService
	history   domain.HistoryService
	adder     domain.Adder
	animation *Animation
	logger    *zap.Logger
}

// New constructs a Shell. A nil animation disables the closing border.
func New(
	in io.Reader,
	out io.Writer,
	convert domain.ConversionService,
	history domain.HistoryService,
	adder domain.Adder,
	animation *Animation,
	logger *zap.Logger,
) *Shell {
	return &Shell{
		in:        bufio.NewReader(in),
		out:       out,
		convert:   convert,
		history:   history,
		adder:     adder,
		animation: animation,
		logger:    logging.OrNop(logger),
	}
}

// Run loops until "exit", end of input or ctx cancellation, then flushes history.
func (s *Shell) Run(ctx context.Context) error {
	err := s.loop(ctx)
	if ferr := s.history.Flush(); ferr != nil {
		fmt.Fprintf(s.out, "Error: could not save history: %v\n", ferr)
		return errors.Join(err, ferr)
	}
	return err
}

func (s *Shell) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		input, err := s.prompt("Enter a string to convert (or type 'exit' to quit): ")
		if err != nil {
			return eofOK(err)
		}
		if input == ExitCommand {
			return nil
		}
		if err := s.round(ctx, input); err != nil {
			return eofOK(err)
		}
	}
}

// round handles one conversion after the input text has been read.
func (s *Shell) round(ctx context.Context, input string) error {
	fmt.Fprintln(s.out, "Choose conversion type:")
	fmt.Fprintln(s.out, "1. Morse Code")
	fmt.Fprintln(s.out, "2. Binary")
	fmt.Fprintln(s.out, "3. Caesar Cipher")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid choice")
		return nil
	}
	kind, err := convert.KindFromChoice(choice)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid choice")
		return nil
	}

	key := 0
	if kind == domain.KindCaesar {
		line, err := s.prompt("Enter key:")
		if err != nil {
			return err
		}
		key, err = strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid key")
			return nil
		}
	}

	conv, err := s.convert.Encode(kind, key, input)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}

	ok, err := s.confirm("Do you want to add the conversion to the history? (y/n) [Case sensitive]: ")
	if err != nil {
		return err
	}
	if ok {
		s.history.Add(conv.Input, conv.Output, conv.Converter)
	}

	fmt.Fprintf(s.out, "Output: %s\n", conv.Output)

	if kind == domain.KindBinary {
		if err := s.offerAddition(conv.Output); err != nil {
			return err
		}
	}

	if s.animation != nil {
		fmt.Fprintf(s.out, "\n%s\n\n", s.animation.Draw(ctx, s.out))
	}
	return nil
}

func (s *Shell) offerAddition(output string) error {
	ok, err := s.confirm("Do you want to perform binary addition with the output? (y/n): ")
	if err != nil || !ok {
		return err
	}
	operand, err := s.prompt("Enter a binary string to add to the output: ")
	if err != nil {
		return err
	}
	sum, err := s.adder.Add(strings.TrimSpace(output), strings.TrimSpace(operand))
	if err != nil {
		s.logger.Debug("binary addition rejected", zap.Error(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "Output after binary addition: %s\n", sum)
	return nil
}

func (s *Shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	return s.readLine()
}

// confirm accepts only a lowercase "y" as yes.
func (s *Shell) confirm(msg string) (bool, error) {
	line, err := s.prompt(msg)
	if err != nil {
		return false, err
	}
	answer := strings.TrimSpace(line)
	return answer != "" && answer[0] == 'y', nil
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func eofOK(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
