package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/adfharrison1/go-datasets/pkg/domain"
)

const (
	// Magic bytes to identify a catalog snapshot
	MagicBytes = "GODS"
	// Current version
	FormatVersion = 1
	// File extension for snapshots
	FileExtension = ".gods"
)

// Header flags
const (
	// FlagRaw marks a payload stored without LZ4 compression
	FlagRaw uint8 = 1 << 0
)

// FileHeader represents the header of a snapshot file
type FileHeader struct {
	Magic    [4]byte // "GODS"
	Version  uint8   // Format version
	Flags    uint8   // Payload flags
	Reserved [2]byte // Reserved for future use
}

// WriteHeader writes the file header to the given writer
func WriteHeader(w io.Writer, flags uint8) error {
	header := FileHeader{
		Magic:    [4]byte{'G', 'O', 'D', 'S'},
		Version:  FormatVersion,
		Flags:    flags,
		Reserved: [2]byte{0, 0},
	}

	return binary.Write(w, binary.LittleEndian, header)
}

// ReadHeader reads and validates the file header
func ReadHeader(r io.Reader) (*FileHeader, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Validate magic bytes
	if string(header.Magic[:]) != MagicBytes {
		return nil, fmt.Errorf("invalid file format: expected %s, got %s", MagicBytes, string(header.Magic[:]))
	}

	// Validate version
	if header.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported file version: %d", header.Version)
	}

	return &header, nil
}

// SnapshotData represents the catalog state stored in a snapshot
type SnapshotData struct {
	Source    string          `msgpack:"source"`
	Columns   []string        `msgpack:"columns,omitempty"`
	Records   []domain.Record `msgpack:"records"`
	CreatedAt time.Time       `msgpack:"created_at"`
}

// NewSnapshotData creates a snapshot of the given catalog state
func NewSnapshotData(source string, columns []string, records []domain.Record) *SnapshotData {
	return &SnapshotData{
		Source:    source,
		Columns:   columns,
		Records:   records,
		CreatedAt: time.Now().UTC(),
	}
}
