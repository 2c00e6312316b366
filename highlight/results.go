package highlight

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic/decoder"
	"github.com/bytedance/sonic/encoder"
)

// EncodeMatches writes matches to w as a JSON array using the wire field
// names the highlight UI consumes. A nil slice encodes as an empty array so
// "no matches" and "error" stay distinguishable on the wire.
func EncodeMatches(w io.Writer, matches []MatchPosition) error {
	if matches == nil {
		matches = []MatchPosition{}
	}
	if err := encoder.NewStreamEncoder(w).Encode(matches); err != nil {
		return fmt.Errorf("encoding matches: %w", err)
	}
	return nil
}

// DecodeMatches reads a JSON array of match positions from r.
func DecodeMatches(r io.Reader) ([]MatchPosition, error) {
	var matches []MatchPosition
	if err := decoder.NewStreamDecoder(r).Decode(&matches); err != nil {
		return nil, fmt.Errorf("decoding matches: %w", err)
	}
	return matches, nil
}

// EncodeBatchResult writes a batch search result to w as JSON. Highlights
// and NotFound encode as empty arrays rather than null so consumers can
// iterate them unconditionally.
func EncodeBatchResult(w io.Writer, result *BatchResult) error {
	out := *result
	if out.Highlights == nil {
		out.Highlights = []ItemMatches{}
	}
	if out.NotFound == nil {
		out.NotFound = []string{}
	}
	if err := encoder.NewStreamEncoder(w).Encode(&out); err != nil {
		return fmt.Errorf("encoding batch result: %w", err)
	}
	return nil
}

// DecodeBatchResult reads a batch search result from r.
func DecodeBatchResult(r io.Reader) (*BatchResult, error) {
	var result BatchResult
	if err := decoder.NewStreamDecoder(r).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding batch result: %w", err)
	}
	return &result, nil
}
