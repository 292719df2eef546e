package logsink

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Found is one matched mnemonic as written to disk.
type Found struct {
	Address  string `json:"address"`
	Network  string `json:"network"`
	Index    int    `json:"index"`
	Path     string `json:"path"`
	Counter  string `json:"counter"`
	Attempts string `json:"attempts"`
	Mnemonic string `json:"mnemonic"`
}

// WriteFound appends rec to found.log (one human-readable line) and
// found.jsonl inside dir.
func WriteFound(dir string, rec Found) error {
	line := fmt.Sprintf(
		"address=%s network=%s index=%d path=%s counter=%s attempts=%s mnemonic=%q",
		rec.Address, rec.Network, rec.Index, rec.Path, rec.Counter, rec.Attempts, rec.Mnemonic,
	)
	if err := appendLine(filepath.Join(dir, "found.log"), []byte(line)); err != nil {
		return err
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return appendLine(filepath.Join(dir, "found.jsonl"), b)
}

func appendLine(path string, b []byte) error {
	f, err := OpenAppend(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
