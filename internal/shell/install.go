package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// installMarker가 rc 파일에 이미 있으면 설치를 건너뛴다.
const installMarker = "prj shell integration"

// InstallHook은 셸 RC 파일에 prj 래퍼 로딩 줄을 추가한다.
// 이미 설치되어 있으면 건너뛴다.
func InstallHook(shellType, rcPath string) error {
	line := HookLine(shellType)
	if line == "" {
		return fmt.Errorf("shell.InstallHook: 지원하지 않는 셸: %s", shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), installMarker) {
		return nil // 이미 설치됨
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return fmt.Errorf("shell.InstallHook: %w", err)
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("shell.InstallHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# %s (%s)\n%s\n", installMarker, shellType, line); err != nil {
		return fmt.Errorf("shell.InstallHook: %w", err)
	}

	return nil
}

// Installed는 rc 파일에 래퍼가 설치되어 있는지 확인한다.
func Installed(rcPath string) bool {
	data, err := os.ReadFile(rcPath)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), installMarker)
}
