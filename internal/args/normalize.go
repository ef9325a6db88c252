// Package args는 사용자가 입력한 원시 토큰을 엔진이 기대하는 정규
// 형태로 변환한다. 변환은 전역적(total)이다: 모든 입력 토큰 시퀀스는
// 정확히 하나의 정규 시퀀스로 매핑되고, 토큰이 조용히 버려지는 일은 없다.
package args

import "strings"

// commands는 첫 토큰으로 왔을 때 그대로 통과시키는 서브커맨드 키워드다.
var commands = map[string]bool{
	"create":     true,
	"delete":     true,
	"list":       true,
	"navigate":   true,
	"hook":       true,
	"setup":      true,
	"doctor":     true,
	"help":       true,
	"completion": true,
}

// Normalize는 원시 토큰을 정규 토큰 목록으로 변환한다.
//
//   - -v/--verbose는 위치와 무관하게 맨 앞으로 이동하고 중복은 하나로 합친다.
//   - 첫 의미 토큰이 "home"이면 navigate home으로 변환한다.
//   - 첫 의미 토큰이 알려진 서브커맨드(또는 플래그)면 그대로 통과시킨다.
//   - 그 외 토큰이 하나라도 있으면 navigate를 앞에 붙인다.
//   - 의미 토큰이 없으면 빈 목록(또는 --verbose만)을 반환한다.
func Normalize(tokens []string) []string {
	verbose := false
	rest := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "-v" || tok == "--verbose" {
			verbose = true
			continue
		}
		rest = append(rest, tok)
	}

	var out []string
	switch {
	case len(rest) == 0:
		out = []string{}
	case rest[0] == "home":
		out = append([]string{"navigate", "home"}, rest[1:]...)
	case commands[rest[0]] || strings.HasPrefix(rest[0], "-"):
		out = rest
	default:
		out = append([]string{"navigate"}, rest...)
	}

	if verbose {
		out = append([]string{"--verbose"}, out...)
	}
	return out
}
