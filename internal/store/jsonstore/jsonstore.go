package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON-backed seed data. Single file, human-readable, portable.
// Read-only: the collection lives in memory and is never written back.

const DefaultFileName = "todos.json"

// record is the on-disk shape. The group label is accepted under any of its
// historical names; "group" wins over "project", which wins over "folder".
type record struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	DueDate   any     `json:"dueDate"`
	Priority  int     `json:"priority"`
	IsDone    bool    `json:"isDone"`
	Group     *string `json:"group"`
	Project   *string `json:"project"`
	Folder    *string `json:"folder"`
	CreatedAt any     `json:"createdAt"`
}

func (r record) item() *model.Item {
	opts := []model.ItemOption{model.WithDone(r.IsDone), model.WithID(r.ID)}
	for _, g := range []*string{r.Group, r.Project, r.Folder} {
		if g != nil {
			opts = append(opts, model.WithGroup(*g))
			break
		}
	}
	if r.CreatedAt != nil {
		opts = append(opts, model.WithCreatedAt(r.CreatedAt))
	}
	return model.NewItem(r.Title, r.Content, r.DueDate, r.Priority, opts...)
}

// DataPath resolves the seed file; an empty name means todos.json in the working directory.
func DataPath(name string) (string, error) {
	if name == "" {
		name = DefaultFileName
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, name), nil
}

// Load reads items from the file at name. A missing file is an empty list.
func Load(name string) ([]*model.Item, error) {
	p, err := DataPath(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Decode(bytes.NewReader(b))
}

// Decode reads a JSON array of item records. Numbers in date fields are
// epoch milliseconds.
func Decode(r io.Reader) ([]*model.Item, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var recs []record
	if err := dec.Decode(&recs); err != nil {
		if errors.Is(err, io.EOF) {
			return []*model.Item{}, nil
		}
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	items := make([]*model.Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, rec.item())
	}
	return items, nil
}
