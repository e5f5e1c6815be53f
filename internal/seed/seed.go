package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/dusk-indust/userstore/internal/user"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// record mirrors one entry in a seed file. Pointer fields distinguish a
// missing key from a zero value so that presence can be enforced.
type record struct {
	ID    *int64  `yaml:"id"`
	Name  *string `yaml:"name"`
	Email *string `yaml:"email"`
}

// Load reads every seed file in parallel and returns the combined records in
// file order, each file's internal order preserved. The first failure cancels
// the remaining reads.
func Load(ctx context.Context, paths []string) ([]*user.User, error) {
	batches := make([][]*user.User, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			users, err := loadFile(path)
			if err != nil {
				return fmt.Errorf("load seed %s: %w", path, err)
			}
			batches[i] = users
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []*user.User
	for _, b := range batches {
		out = append(out, b...)
	}
	return out, nil
}

// Populate loads the given seed files and appends every record to the store
// in file order. It returns the number of records appended.
func Populate(ctx context.Context, store *user.Store, paths []string) (int, error) {
	users, err := Load(ctx, paths)
	if err != nil {
		return 0, err
	}
	for _, u := range users {
		store.Create(u)
	}
	return len(users), nil
}

// loadFile parses one YAML seed file, enforcing field presence per record.
func loadFile(path string) ([]*user.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(records))
	for i, r := range records {
		switch {
		case r.ID == nil:
			return nil, fmt.Errorf("record %d: id is required", i)
		case r.Name == nil:
			return nil, fmt.Errorf("record %d: name is required", i)
		case r.Email == nil:
			return nil, fmt.Errorf("record %d: email is required", i)
		}
		users = append(users, &user.User{ID: *r.ID, Name: *r.Name, Email: *r.Email})
	}
	return users, nil
}
