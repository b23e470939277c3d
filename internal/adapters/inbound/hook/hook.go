// Package hook implements the JSON protocol spoken with the host runtime:
// events arrive as JSON on standard input, and decisions leave as JSON on
// standard output paired with a process exit code.
package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nugate/nugate/internal/domain"
)

// Exit codes mandated by the hook protocol.
const (
	ExitOK    = 0
	ExitBlock = 2
)

// Input is the event payload delivered by the host runtime.
type Input struct {
	ToolInput  *FileRef `json:"tool_input,omitempty"`
	ToolResult *FileRef `json:"tool_result,omitempty"`
}

// FileRef names the file an event concerns; pre-write events also carry the
// proposed content.
type FileRef struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content,omitempty"`
}

// Decode reads one event from r.
func Decode(r io.Reader) (*Input, error) {
	var in Input
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("decoding hook input: %w", err)
	}
	return &in, nil
}

// FilePath returns the target path, preferring tool_input over tool_result.
func (in *Input) FilePath() string {
	if in.ToolInput != nil && in.ToolInput.FilePath != "" {
		return in.ToolInput.FilePath
	}
	if in.ToolResult != nil {
		return in.ToolResult.FilePath
	}
	return ""
}

// Content returns the proposed file body of a pre-write event.
func (in *Input) Content() string {
	if in.ToolInput != nil {
		return in.ToolInput.Content
	}
	return ""
}

// WriteDecision emits a gate decision.
func WriteDecision(w io.Writer, d *domain.GateDecision) error {
	return json.NewEncoder(w).Encode(d)
}

// WriteSystemMessage emits the post-write failure payload.
func WriteSystemMessage(w io.Writer, message string) error {
	return json.NewEncoder(w).Encode(map[string]string{"systemMessage": message})
}
