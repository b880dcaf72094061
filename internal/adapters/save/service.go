// Package save persists caller-owned objects through a pluggable codec and
// blob store.
package save

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/gamekit/internal/adapters/codec"
	"github.com/bnema/gamekit/internal/domain"
	"github.com/bnema/gamekit/internal/ports"
	"github.com/sirupsen/logrus"
)

// EnvelopeVersion is the newest multi-object payload layout this package can
// read.
const EnvelopeVersion = 1

// Envelope is the on-disk layout of a multi-object save. Fragment i holds the
// encoded form of object i, or an empty string when the slot was absent.
type Envelope struct {
	Version   int      `json:"version" toml:"version" yaml:"version"`
	Fragments []string `json:"fragments" toml:"fragments" yaml:"fragments"`
}

type Service struct {
	store ports.BlobStore
	codec codec.Codec
	log   logrus.FieldLogger
}

var _ ports.SaveService = (*Service)(nil)

func NewService(store ports.BlobStore, c codec.Codec, log logrus.FieldLogger) *Service {
	if c == nil {
		c = codec.JSON{}
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Service{store: store, codec: c, log: log}
}

func (s *Service) Codec() codec.Codec {
	return s.codec
}

func (s *Service) SaveOne(ctx context.Context, object any, fileName string, pretty bool) error {
	if domain.Absent(object) {
		return nil
	}
	if err := validateFileName(fileName); err != nil {
		return err
	}

	data, err := s.codec.Marshal(object, pretty)
	if err != nil {
		return fmt.Errorf("encode %q: %w", fileName, err)
	}
	if err := s.store.Write(ctx, fileName, data); err != nil {
		return fmt.Errorf("save %q: %w", fileName, err)
	}

	return nil
}

// LoadOne overwrites object from the stored payload. When nothing is stored
// yet the object's current values are written instead, so the first load
// seeds the file.
func (s *Service) LoadOne(ctx context.Context, object any, fileName string) error {
	if domain.Absent(object) {
		return nil
	}
	if err := validateFileName(fileName); err != nil {
		return err
	}

	data, err := s.store.Read(ctx, fileName)
	if err != nil {
		if !errors.Is(err, domain.ErrSaveNotFound) {
			return fmt.Errorf("load %q: %w", fileName, err)
		}
		s.log.WithField("file", fileName).Debug("no save found, seeding from defaults")
		return s.SaveOne(ctx, object, fileName, true)
	}

	if err := s.codec.Unmarshal(data, object); err != nil {
		return fmt.Errorf("decode %q: %w", fileName, err)
	}

	return nil
}

func (s *Service) SaveMany(ctx context.Context, objects []any, fileName string, pretty bool) error {
	if len(objects) == 0 {
		return nil
	}
	if err := validateFileName(fileName); err != nil {
		return err
	}

	envelope := Envelope{Version: EnvelopeVersion, Fragments: make([]string, len(objects))}
	for i, object := range objects {
		if domain.Absent(object) {
			continue
		}
		fragment, err := s.codec.Marshal(object, false)
		if err != nil {
			return fmt.Errorf("encode %q slot %d: %w", fileName, i, err)
		}
		envelope.Fragments[i] = string(fragment)
	}

	data, err := s.codec.Marshal(envelope, pretty)
	if err != nil {
		return fmt.Errorf("encode %q: %w", fileName, err)
	}
	if err := s.store.Write(ctx, fileName, data); err != nil {
		return fmt.Errorf("save %q: %w", fileName, err)
	}

	s.log.WithFields(logrus.Fields{"file": fileName, "objects": len(objects)}).Debug("saved objects")
	return nil
}

// LoadMany overwrites objects[i] from fragment i. Slots beyond either length
// are left alone, and a missing file leaves every object untouched.
func (s *Service) LoadMany(ctx context.Context, objects []any, fileName string) error {
	if len(objects) == 0 {
		return nil
	}
	if err := validateFileName(fileName); err != nil {
		return err
	}

	envelope, found, err := s.readEnvelope(ctx, fileName)
	if err != nil || !found {
		return err
	}

	limit := min(len(objects), len(envelope.Fragments))
	for i := 0; i < limit; i++ {
		fragment := envelope.Fragments[i]
		if domain.Absent(objects[i]) || fragment == "" {
			continue
		}
		if err := s.codec.Unmarshal([]byte(fragment), objects[i]); err != nil {
			return fmt.Errorf("decode %q slot %d: %w", fileName, i, err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"file":      fileName,
		"objects":   len(objects),
		"fragments": len(envelope.Fragments),
	}).Debug("loaded objects")
	return nil
}

func (s *Service) SaveValue(ctx context.Context, value any, fileName string, pretty bool) error {
	return s.SaveOne(ctx, value, fileName, pretty)
}

// LoadValue decodes the stored payload into out. It reports false without an
// error when nothing is stored and never writes.
func (s *Service) LoadValue(ctx context.Context, fileName string, out any) (bool, error) {
	if err := validateFileName(fileName); err != nil {
		return false, err
	}

	data, err := s.store.Read(ctx, fileName)
	if err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %q: %w", fileName, err)
	}

	if err := s.codec.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %q: %w", fileName, err)
	}

	return true, nil
}

// Inspect returns the decoded envelope of a multi-object save.
func (s *Service) Inspect(ctx context.Context, fileName string) (Envelope, bool, error) {
	if err := validateFileName(fileName); err != nil {
		return Envelope{}, false, err
	}
	return s.readEnvelope(ctx, fileName)
}

func (s *Service) readEnvelope(ctx context.Context, fileName string) (Envelope, bool, error) {
	data, err := s.store.Read(ctx, fileName)
	if err != nil {
		if errors.Is(err, domain.ErrSaveNotFound) {
			return Envelope{}, false, nil
		}
		return Envelope{}, false, fmt.Errorf("load %q: %w", fileName, err)
	}

	var envelope Envelope
	if err := s.codec.Unmarshal(data, &envelope); err != nil {
		return Envelope{}, false, fmt.Errorf("decode %q: %w", fileName, err)
	}
	if envelope.Version > EnvelopeVersion {
		return Envelope{}, false, fmt.Errorf("%w: %q has version %d", domain.ErrUnsupportedSaveVersion, fileName, envelope.Version)
	}

	return envelope, true, nil
}

// TryLoadValue loads a fresh T from fileName.
func TryLoadValue[T any](ctx context.Context, svc ports.SaveService, fileName string) (T, bool, error) {
	var value T
	found, err := svc.LoadValue(ctx, fileName, &value)
	if err != nil || !found {
		var zero T
		return zero, false, err
	}
	return value, true, nil
}

func validateFileName(fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return domain.ErrEmptyFileName
	}
	return nil
}
