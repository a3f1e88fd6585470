package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// textカラムにJSONを入れるための型たち。
// 読み出しは壊れたデータでもエラーにせず、既定値（空リスト）に落とす。

func columnText(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// StringList はJSON配列の文字列リスト（images / image_positions / image_rotations）
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	raw, ok := columnText(value)
	if !ok || raw == "" {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		// 壊れたJSONは空リスト扱い
		*l = StringList{}
		return nil
	}
	*l = out
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// VariantList はバリエーション（中身は解釈しない、そのまま通す）
type VariantList []json.RawMessage

func (l *VariantList) Scan(value interface{}) error {
	raw, ok := columnText(value)
	if !ok || raw == "" {
		*l = VariantList{}
		return nil
	}
	var out []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		*l = VariantList{}
		return nil
	}
	*l = out
	return nil
}

func (l VariantList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]json.RawMessage(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l VariantList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(l))
}

// ParseVariants はフォームから来たJSON文字列をリストにする。壊れていたら空リスト。
func ParseVariants(raw string) VariantList {
	var l VariantList
	_ = l.Scan(raw)
	return l
}

// Category はカテゴリのリスト。旧データは素の文字列で入っていることがあり、
// その場合は文字列のまま保持してAPIにもそのまま返す。
type Category struct {
	names []string
	plain string
}

// NewCategory はカテゴリ名のリストから作る（保存時は常にJSON配列になる）
func NewCategory(names []string) Category {
	if names == nil {
		names = []string{}
	}
	return Category{names: names}
}

// Names はカテゴリ名のリスト。旧形式の場合はその1件だけを返す。
func (c Category) Names() []string {
	if c.names == nil {
		if c.plain != "" {
			return []string{c.plain}
		}
		return []string{}
	}
	return c.names
}

// IsPlain は旧形式（素の文字列）かどうか
func (c Category) IsPlain() bool {
	return c.names == nil && c.plain != ""
}

func (c *Category) Scan(value interface{}) error {
	raw, ok := columnText(value)
	if !ok || raw == "" {
		*c = Category{}
		return nil
	}
	// JSONっぽいときだけパースを試みる（'[' 始まり、または '"' を含む）
	if strings.HasPrefix(raw, "[") || strings.Contains(raw, `"`) {
		var names []string
		if err := json.Unmarshal([]byte(raw), &names); err == nil {
			*c = Category{names: names}
			return nil
		}
		var single string
		if err := json.Unmarshal([]byte(raw), &single); err == nil {
			*c = Category{plain: single}
			return nil
		}
	}
	*c = Category{plain: raw}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	b, err := json.Marshal(c.Names())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c Category) MarshalJSON() ([]byte, error) {
	if c.IsPlain() {
		return json.Marshal(c.plain)
	}
	return json.Marshal(c.Names())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*c = Category{names: names}
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*c = Category{plain: single}
	return nil
}

// LineItems は注文時のカートのスナップショット（中身は解釈しない）
type LineItems []json.RawMessage

func (l *LineItems) Scan(value interface{}) error {
	raw, ok := columnText(value)
	if !ok || raw == "" {
		*l = LineItems{}
		return nil
	}
	var out []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		*l = LineItems{}
		return nil
	}
	*l = out
	return nil
}

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]json.RawMessage(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l LineItems) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]json.RawMessage(l))
}
