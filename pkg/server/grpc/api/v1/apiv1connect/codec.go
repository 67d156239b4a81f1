package apiv1connect

import (
	"encoding/json"
	"fmt"
)

// JSONCodec replaces connect's protobuf-only JSON codec so that plain Go structs can be exchanged.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("invalid json message: %w", err)
	}

	return nil
}
