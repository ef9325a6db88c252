// Package prompt는 대화형 확인 프롬프트를 추상화한다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 testutil의 FakePrompter를 사용한다.
package prompt

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Prompter는 yes/no 확인 프롬프트 실행을 추상화하는 interface다.
type Prompter interface {
	// Confirm은 확인 프롬프트를 표시한다. 입력 스트림 실패 시
	// (false, err)를 반환한다 — 호출자는 암묵적 거절로 처리해야 한다.
	Confirm(message string) (bool, error)
}

// HuhPrompter는 charmbracelet/huh 기반의 Prompter 구현이다.
// 폼은 stderr에 렌더링한다. stdout은 directive 스트림이라 오염되면 안 된다.
type HuhPrompter struct{}

var _ Prompter = (*HuhPrompter)(nil)

// Confirm은 huh confirm 폼을 실행한다.
func (h *HuhPrompter) Confirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	)).WithOutput(os.Stderr)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt.Confirm: %w", err)
	}
	return confirm, nil
}
