// Package protocol은 엔진(prj 바이너리)과 셸 래퍼 함수 사이의 line
// 프로토콜을 정의한다. 엔진은 자식 프로세스라서 부모 셸의 디렉토리나
// 환경을 직접 바꿀 수 없으므로, 예약된 prefix가 붙은 directive 줄을
// stdout으로 내보내고 래퍼가 이를 해석해 대신 수행한다.
// directive가 아닌 줄은 래퍼가 그대로 사용자에게 전달한다.
package protocol

import (
	"fmt"
	"io"
	"strings"
)

const (
	// PrefixNavigate는 래퍼가 해당 경로로 cd해야 하는 directive prefix다.
	PrefixNavigate = "NAVIGATE_TO:"
	// PrefixActivate는 래퍼가 해당 활성화 스크립트를 source해야 하는 directive prefix다.
	PrefixActivate = "ACTIVATE_VENV:"
)

// Navigate는 디렉토리 이동 directive 한 줄을 출력한다.
// path는 절대 경로여야 하며 개행을 포함하면 안 된다 (이름 검증에서 보장).
func Navigate(w io.Writer, path string) {
	fmt.Fprintf(w, "%s%s\n", PrefixNavigate, path)
}

// Activate는 가상환경 활성화 directive 한 줄을 출력한다.
// 이동 directive 이후에만 출력되어야 한다.
func Activate(w io.Writer, path string) {
	fmt.Fprintf(w, "%s%s\n", PrefixActivate, path)
}

// Parse는 출력 한 줄을 해석한다. directive 줄이면 prefix와 경로를
// 반환하고, 일반 텍스트 줄이면 ok=false를 반환한다.
//
// 실제 디코딩은 셸 래퍼 함수(shell.WrapperSnippet)의 case 분기가
// 수행한다. Parse는 그 분기를 Go 쪽에서 그대로 재현한 레퍼런스
// 디코더로, 와이어 포맷의 왕복을 검증하는 데 쓰인다.
func Parse(line string) (prefix, path string, ok bool) {
	for _, p := range []string{PrefixNavigate, PrefixActivate} {
		if strings.HasPrefix(line, p) {
			return p, strings.TrimPrefix(line, p), true
		}
	}
	return "", "", false
}
