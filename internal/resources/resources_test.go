package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"inkwell/internal/project"
)

func readStatus(t *testing.T, h *Handler) mcp.ResourceContents {
	t.Helper()
	req := mcp.ReadResourceRequest{}
	req.Params.URI = "inkwell://project/status"

	contents, err := h.HandleStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleStatus failed: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected one resource content, got %d", len(contents))
	}
	return contents[0]
}

func TestHandleStatus_NoProject(t *testing.T) {
	h := NewHandler(project.NewManager(t.TempDir()))

	tc, ok := readStatus(t, h).(mcp.TextResourceContents)
	if !ok {
		t.Fatal("expected text resource contents")
	}
	if !strings.Contains(tc.Text, "no active project") {
		t.Errorf("expected no-active-project message, got: %s", tc.Text)
	}
}

func TestHandleStatus_ActiveProject(t *testing.T) {
	m := project.NewManager(t.TempDir())
	p, err := m.Create("memoir")
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if _, err := p.WriteFile("intro.md", "# Intro", project.ModeCreate); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tc, ok := readStatus(t, NewHandler(m)).(mcp.TextResourceContents)
	if !ok {
		t.Fatal("expected text resource contents")
	}
	if tc.MIMEType != "application/json" {
		t.Errorf("mime type = %q, want application/json", tc.MIMEType)
	}

	var st struct {
		Name      string `json:"name"`
		FileCount int    `json:"file_count"`
	}
	if err := json.Unmarshal([]byte(tc.Text), &st); err != nil {
		t.Fatalf("status is not JSON: %v", err)
	}
	if st.Name != "memoir" || st.FileCount != 1 {
		t.Errorf("unexpected status: %+v", st)
	}
}
