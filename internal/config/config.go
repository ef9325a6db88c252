package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// EnvRoot는 root 설정을 덮어쓰는 환경변수 이름이다.
const EnvRoot = "PRJ_ROOT"

// Config는 prj 설정 파일의 최상위 구조체다.
type Config struct {
	Version int    `toml:"version"`
	Root    string `toml:"root"`
	Python  string `toml:"python"`
	VenvDir string `toml:"venv_dir"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값만 채운 Config를 반환한다 (설정 파일은 선택 사항).
// PRJ_ROOT 환경변수가 있으면 root보다 우선한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: %s: %v: %w", path, err, ErrConfig)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 직렬화해 path에 0600 권한으로 저장한다.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Root == "" {
		c.Root = filepath.Join(homeDir(), "Documents", "Projects")
	}
	if env := os.Getenv(EnvRoot); env != "" {
		c.Root = env
	}
	c.Root = expandTilde(c.Root)
	if abs, err := filepath.Abs(c.Root); err == nil {
		c.Root = abs
	}
	if c.Python == "" {
		c.Python = "python3"
	}
	if c.VenvDir == "" {
		c.VenvDir = "venv"
	}
}

func (c *Config) validate() error {
	if strings.ContainsAny(c.VenvDir, `/\`) || c.VenvDir == "." || c.VenvDir == ".." {
		return fmt.Errorf("config.Load: venv_dir는 단일 디렉토리 이름이어야 합니다 (%q): %w", c.VenvDir, ErrConfig)
	}
	if strings.ContainsRune(c.Root, '\n') {
		return fmt.Errorf("config.Load: root에 개행을 포함할 수 없습니다: %w", ErrConfig)
	}
	return nil
}

// expandTilde는 경로 맨 앞의 ~를 홈 디렉토리로 치환한다.
func expandTilde(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
