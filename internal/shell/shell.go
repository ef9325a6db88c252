package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/prj/internal/protocol"
)

// WrapperSnippet는 셸에 source되는 pj 래퍼 함수를 반환한다.
// 래퍼는 엔진의 stdout을 줄 단위로 스트리밍하며 directive 줄을 현재
// 셸에서 수행하고(cd, source), 나머지 줄은 순서 그대로 출력한다.
// directive가 없으면 아무 부수효과도 수행하지 않는다. 엔진의 종료
// 코드가 래퍼의 종료 코드가 된다. 지원하지 않는 셸이면 빈 문자열이다.
func WrapperSnippet(shellType string) string {
	switch shellType {
	case "zsh":
		// zsh는 파이프라인 마지막 단계를 현재 셸에서 실행하므로
		// while 본문의 cd가 그대로 반영된다
		return fmt.Sprintf(`# prj shell integration (zsh)
pj() {
  local line
  command prj "$@" | while IFS= read -r line; do
    case "$line" in
      %[1]s*) cd "${line#%[1]s}" ;;
      %[2]s*) . "${line#%[2]s}" ;;
      *) printf '%%s\n' "$line" ;;
    esac
  done
  return "${pipestatus[1]}"
}
`, protocol.PrefixNavigate, protocol.PrefixActivate)
	case "bash":
		// bash는 파이프라인 단계가 서브셸이라 process substitution을 쓴다.
		// wait "$!"가 엔진의 종료 코드를 돌려준다 (bash 4.4+)
		return fmt.Sprintf(`# prj shell integration (bash)
pj() {
  local line
  while IFS= read -r line; do
    case "$line" in
      %[1]s*) cd "${line#%[1]s}" ;;
      %[2]s*) . "${line#%[2]s}" ;;
      *) printf '%%s\n' "$line" ;;
    esac
  done < <(command prj "$@")
  wait "$!"
}
`, protocol.PrefixNavigate, protocol.PrefixActivate)
	case "fish":
		return fmt.Sprintf(`# prj shell integration (fish)
function pj
  command prj $argv | while read -l line
    switch "$line"
      case '%[1]s*'
        cd (string replace -- '%[1]s' '' "$line")
      case '%[2]s*'
        source (string replace -- '%[2]s' '' "$line")
      case '*'
        echo "$line"
    end
  end
  return $pipestatus[1]
end
`, protocol.PrefixNavigate, protocol.PrefixActivate)
	default:
		return ""
	}
}

// HookLine은 rc 파일에 추가되는 로딩 한 줄이다.
func HookLine(shellType string) string {
	switch shellType {
	case "zsh", "bash":
		return fmt.Sprintf(`eval "$(command prj hook --shell %s)"`, shellType)
	case "fish":
		return "command prj hook --shell fish | source"
	default:
		return ""
	}
}

// Detect는 현재 사용자의 셸을 감지한다.
func Detect() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// RCPath는 셸별 RC 파일 경로를 반환한다.
func RCPath(shellType string) string {
	home, _ := os.UserHomeDir() // 홈 디렉토리 조회 실패 시 빈 문자열
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "prj.fish")
	default:
		return ""
	}
}
