package storage

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// maxSnapshotSize bounds the uncompressed size we are willing to allocate
const maxSnapshotSize = 1 << 30

// SaveSnapshot writes snapshot to filename as header, uncompressed length
// and an LZ4-compressed MessagePack block.
func SaveSnapshot(filename string, snapshot *SnapshotData) error {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, snapshot); err != nil {
		return err
	}

	// Temp file + rename: readers never see a partial snapshot
	tmp := filename + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to rename snapshot: %w", err)
	}
	return nil
}

// WriteSnapshot encodes snapshot to w
func WriteSnapshot(w io.Writer, snapshot *SnapshotData) error {
	msgpackData, err := msgpack.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	var flags uint8
	payload := make([]byte, lz4.CompressBlockBound(len(msgpackData)))
	var hashTable [1 << 16]int
	n, err := lz4.CompressBlock(msgpackData, payload, hashTable[:])
	if err != nil {
		return fmt.Errorf("failed to compress data: %w", err)
	}
	if n == 0 {
		// lz4 reports incompressible input with a zero length
		flags |= FlagRaw
		payload = msgpackData
	} else {
		payload = payload[:n]
	}

	if err := WriteHeader(w, flags); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(msgpackData))); err != nil {
		return fmt.Errorf("failed to write length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot written by SaveSnapshot
func LoadSnapshot(filename string) (*SnapshotData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadSnapshot(file)
}

// ReadSnapshot decodes a snapshot from r
func ReadSnapshot(r io.Reader) (*SnapshotData, error) {
	header, err := ReadHeader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid file header: %w", err)
	}

	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("failed to read length: %w", err)
	}
	if size > maxSnapshotSize {
		return nil, fmt.Errorf("snapshot too large: %d bytes", size)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed data: %w", err)
	}

	data := payload
	if header.Flags&FlagRaw == 0 {
		data = make([]byte, size)
		n, err := lz4.UncompressBlock(payload, data)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress data: %w", err)
		}
		data = data[:n]
	}
	if len(data) != int(size) {
		return nil, fmt.Errorf("snapshot length mismatch: expected %d bytes, got %d", size, len(data))
	}

	var snapshot SnapshotData
	if err := msgpack.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return &snapshot, nil
}
