package engine

import (
	"fmt"
	"strings"
)

// EngineError represents a user-facing Docker failure with remediation steps.
type EngineError struct {
	Op        string   // Operation that failed (e.g., "connect", "run", "verify")
	Err       error    // Underlying error
	Message   string   // Human-readable message
	NextSteps []string // Suggested remediation steps
}

func (e *EngineError) Error() string {
	return e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// FormatUserError formats the error for display to users.
func (e *EngineError) FormatUserError() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Error: %s\n", e.Message))

	if e.Err != nil {
		sb.WriteString(fmt.Sprintf("  Details: %s\n", e.Err.Error()))
	}

	if len(e.NextSteps) > 0 {
		sb.WriteString("\nNext Steps:\n")
		for i, step := range e.NextSteps {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return sb.String()
}

// ErrEngineUnreachable returns an error for when the Docker daemon is not accessible.
func ErrEngineUnreachable(err error) *EngineError {
	return &EngineError{
		Op:      "connect",
		Err:     err,
		Message: "Cannot connect to Docker daemon",
		NextSteps: []string{
			"Ensure Docker is installed",
			"Start Docker Desktop (macOS/Windows) or run 'sudo systemctl start docker' (Linux)",
			"Check if Docker socket is accessible: ls -la /var/run/docker.sock",
		},
	}
}

// ErrContainerStartFailed returns an error for when a container fails to start.
func ErrContainerStartFailed(name string, err error) *EngineError {
	return &EngineError{
		Op:      "run",
		Err:     err,
		Message: fmt.Sprintf("Failed to start container '%s'", name),
		NextSteps: []string{
			"Check container logs: docker logs " + name,
			"Verify the image is valid and present: docker image ls",
			"Check for port conflicts",
		},
	}
}

// ErrBrowsersFileMissing returns an error for when the browser configuration
// file a session depends on does not exist.
func ErrBrowsersFileMissing(path string) *EngineError {
	return &EngineError{
		Op:      "verify",
		Message: fmt.Sprintf("Browser configuration file '%s' does not exist", path),
		NextSteps: []string{
			"Create the file or point browsers_file at an existing one",
			"See the browsers.json format: https://aerokube.com/selenoid/latest/#_browsers_configuration_file",
		},
	}
}
