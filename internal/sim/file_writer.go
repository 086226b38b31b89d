package sim

import (
	"encoding/json"
	"os"

	"manet-sim/internal/telemetry"
)

// FileWriter exports metric rows to JSONL files, one file per stream.
// Any path may be empty to skip that stream.
type FileWriter struct {
	movFile  *os.File
	connFile *os.File
	pktFile  *os.File
	movEnc   *json.Encoder
	connEnc  *json.Encoder
	pktEnc   *json.Encoder
}

// NewFileWriter creates a FileWriter for the given paths.
func NewFileWriter(movementPath, connectivityPath, packetsPath string) (*FileWriter, error) {
	fw := &FileWriter{}
	open := func(path string) (*os.File, *json.Encoder, error) {
		if path == "" {
			return nil, nil, nil
		}
		f, err := os.Create(path)
		if err != nil {
			fw.Close()
			return nil, nil, err
		}
		return f, json.NewEncoder(f), nil
	}

	var err error
	if fw.movFile, fw.movEnc, err = open(movementPath); err != nil {
		return nil, err
	}
	if fw.connFile, fw.connEnc, err = open(connectivityPath); err != nil {
		return nil, err
	}
	if fw.pktFile, fw.pktEnc, err = open(packetsPath); err != nil {
		return nil, err
	}
	return fw, nil
}

// WriteMovement logs a single movement row, if enabled.
func (f *FileWriter) WriteMovement(row telemetry.MovementRow) error {
	if f.movEnc == nil {
		return nil
	}
	return f.movEnc.Encode(row)
}

// WriteConnectivity logs a single connectivity row, if enabled.
func (f *FileWriter) WriteConnectivity(row telemetry.ConnectivityRow) error {
	if f.connEnc == nil {
		return nil
	}
	return f.connEnc.Encode(row)
}

// WritePacket logs a single packet row, if enabled.
func (f *FileWriter) WritePacket(row telemetry.PacketRow) error {
	if f.pktEnc == nil {
		return nil
	}
	return f.pktEnc.Encode(row)
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	for _, file := range []*os.File{f.movFile, f.connFile, f.pktFile} {
		if file == nil {
			continue
		}
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
