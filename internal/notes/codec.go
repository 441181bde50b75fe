package notes

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// codec matches encoding/json output so blobs stay readable by other tools.
var codec = sonic.ConfigStd

// Encode serializes the collection as a JSON array. A nil collection encodes as [].
func Encode(notes []Note) ([]byte, error) {
	if notes == nil {
		notes = []Note{}
	}
	data, err := codec.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	return data, nil
}

// Decode parses a serialized collection.
func Decode(data []byte) ([]Note, error) {
	var notes []Note
	if err := codec.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}
