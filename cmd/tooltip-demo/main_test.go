package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlaceCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "flips to bottom near the top edge",
			args: []string{"place", "--anchor", "0,0,100,20", "--tooltip", "60x30", "--side", "top", "--viewport", "800x600"},
			want: `{"side":"bottom","x":20,"y":28}`,
		},
		{
			name: "keeps requested side",
			args: []string{"place", "--anchor", "300, 200, 100, 20", "--tooltip", "60X30", "--side", "right", "--viewport", "800x600"},
			want: `{"side":"right","x":408,"y":195}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, out)
			}
		})
	}
}

func TestPlaceCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad anchor", []string{"place", "--anchor", "1,2,3", "--tooltip", "1x1"}, "--anchor"},
		{"bad tooltip", []string{"place", "--anchor", "1,2,3,4", "--tooltip", "wide"}, "--tooltip"},
		{"negative viewport", []string{"place", "--anchor", "1,2,3,4", "--tooltip", "1x1", "--viewport", "-1x5"}, "--viewport"},
		{"bad side", []string{"place", "--anchor", "1,2,3,4", "--tooltip", "1x1", "--side", "up"}, "--side"},
		{"missing flag", []string{"place", "--tooltip", "1x1"}, "anchor"},
		{"bad log level", []string{"--log-level", "loud", "version"}, "--log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error to contain %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "tooltip-demo dev") {
		t.Errorf("Unexpected version output %q", out)
	}
}
