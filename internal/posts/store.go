/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package posts is a small in-memory blog-post service used to exercise the
// outcome adapter end to end.
package posts

import (
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Post is a stored blog post.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"authorId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Seed is the post every new Store starts with.
var Seed = Post{
	ID:        1,
	Title:     "First Post",
	Content:   "This is the first post",
	AuthorID:  1,
	CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// Store keeps posts in memory. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	posts  map[int]Post
	nextID int
	now    func() time.Time
}

// NewStore returns a Store seeded with Seed.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		posts:  map[int]Post{Seed.ID: Seed},
		nextID: Seed.ID + 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the post with the given id.
func (s *Store) Get(id int) (Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	return p, ok
}

// Add assigns an id and creation time to p and stores it.
func (s *Store) Add(p Post) Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextID
	s.nextID++
	p.CreatedAt = s.now().UTC().Truncate(time.Second)
	s.posts[p.ID] = p
	return p
}

// List returns all posts ordered by id.
func (s *Store) List() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := lo.Values(s.posts)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
