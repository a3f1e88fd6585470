package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// 配信URLのプレフィックス
const RefPrefix = "/uploads/"

// 画像として一覧に出す拡張子
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// ImageStore はアップロード画像をローカルディレクトリに保存する。
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ImageStore{dir: dir}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// ディレクトリ部分を捨ててファイル名だけにする。"." や ".." は無効。
func baseName(filename string) string {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// Save はファイルを保存して参照パス（/uploads/<name>）を返す。
// ファイル名はbasenameに落とし、同名ファイルがあれば短いサフィックスを付けて別名にする。
func (s *ImageStore) Save(filename string, r io.Reader) (string, error) {
	name := baseName(filename)
	if name == "" {
		return "", errors.New("invalid filename")
	}

	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		// 衝突時は上書きせず別名にする
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		name = stem + "-" + uuid.NewString()[:8] + ext
		path = filepath.Join(s.dir, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return RefPrefix + name, nil
}

// List は画像ファイルの参照パス一覧を返す。
func (s *ImageStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	refs := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if imageExtensions[ext] {
			refs = append(refs, RefPrefix+e.Name())
		}
	}
	return refs, nil
}

// Delete は1ファイル削除する。
// パストラバーサル対策としてbasenameしか見ない。
func (s *ImageStore) Delete(filename string) error {
	name := baseName(filename)
	if name == "" {
		return ErrNotFound
	}
	path := filepath.Join(s.dir, name)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return os.Remove(path)
}
