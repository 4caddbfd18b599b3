package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"cipherbox/internal/codec/binary"
	"cipherbox/internal/codec/caesar"
	"cipherbox/internal/codec/morse"
	"cipherbox/internal/domain"
	"cipherbox/internal/logging"
)

// ErrUnknownKind is returned for a converter name or menu choice that does not exist.
var ErrUnknownKind = errors.New("unknown converter")

// Options tunes the converters the Service builds.
type Options struct {
	MorseStrict bool
}

// Service runs encode/decode requests against the three converter variants.
type Service struct {
	opts   Options
	logger *zap.Logger
}

// New constructs a conversion Service.
func New(opts Options, logger *zap.Logger) *Service {
	return &Service{opts: opts, logger: logging.OrNop(logger)}
}

// ParseKind accepts a variant name or its menu number.
func ParseKind(s string) (domain.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		return KindFromChoice(n)
	}
	for _, k := range domain.Kinds() {
		if s == k.String() {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// KindFromChoice maps menu numbers 1=Morse, 2=Binary, 3=Caesar.
func KindFromChoice(choice int) (domain.Kind, error) {
	switch choice {
	case 1:
		return domain.KindMorse, nil
	case 2:
		return domain.KindBinary, nil
	case 3:
		return domain.KindCaesar, nil
	}
	return "", fmt.Errorf("%w: choice %d", ErrUnknownKind, choice)
}

// Converter returns the variant for kind. key is used only by Caesar.
func (s *Service) Converter(kind domain.Kind, key int) (domain.Converter, error) {
	switch kind {
	case domain.KindMorse:
		if s.opts.MorseStrict {
			return morse.NewStrict(), nil
		}
		return morse.New(), nil
	case domain.KindBinary:
		return binary.New(), nil
	case domain.KindCaesar:
		return caesar.New(key), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
}

// Encode runs the kind's encoder over input.
func (s *Service) Encode(kind domain.Kind, key int, input string) (domain.Conversion, error) {
	c, err := s.Converter(kind, key)
	if err != nil {
		return domain.Conversion{}, err
	}
	out := c.Encode(input)
	s.logger.Debug("encoded",
		zap.String("converter", c.Name()),
		zap.Int("in_bytes", len(input)),
		zap.Int("out_bytes", len(out)))
	return domain.Conversion{Converter: c.Name(), Input: input, Output: out}, nil
}

// Decode runs the kind's decoder over input.
func (s *Service) Decode(kind domain.Kind, key int, input string) (domain.Conversion, error) {
	c, err := s.Converter(kind, key)
	if err != nil {
		return domain.Conversion{}, err
	}
	out, err := c.Decode(input)
	if err != nil {
		s.logger.Debug("decode failed", zap.String("converter", c.Name()), zap.Error(err))
		return domain.Conversion{}, fmt.Errorf("decoding %s: %w", c.Name(), err)
	}
	s.logger.Debug("decoded",
		zap.String("converter", c.Name()),
		zap.Int("in_bytes", len(input)),
		zap.Int("out_bytes", len(out)))
	return domain.Conversion{Converter: c.Name(), Input: input, Output: out}, nil
}

var _ domain.ConversionService = (*Service)(nil)
