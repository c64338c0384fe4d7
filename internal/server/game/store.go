package game

import (
	"time"

	"github.com/pkg/errors"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const sessionProperty = "board"

// Record is what the store keeps per session.
type Record struct {
	Position  string    `yaml:"position"`
	Revision  int       `yaml:"revision"`
	CreatedAt time.Time `yaml:"createdAt"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// Store persists session snapshots through gdata so a restarted client can
// pick its previews back up.
type Store struct {
	gm *gdata.Manager
}

func OpenStore(appName string) (*Store, error) {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, errors.Wrap(err, "open gdata")
	}
	return &Store{gm: gm}, nil
}

func NewStore(gm *gdata.Manager) *Store {
	return &Store{gm: gm}
}

func sessionObject(id string) string { return "session_" + id }

func (s *Store) Save(id string, rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}
	if err := s.gm.SaveObjectProp(sessionObject(id), sessionProperty, data); err != nil {
		return errors.Wrap(err, "save session")
	}
	return nil
}

// Load reports ok=false when nothing was stored for id.
func (s *Store) Load(id string) (Record, bool, error) {
	var rec Record
	if !s.gm.ObjectPropExists(sessionObject(id), sessionProperty) {
		return rec, false, nil
	}
	data, err := s.gm.LoadObjectProp(sessionObject(id), sessionProperty)
	if err != nil {
		return rec, false, errors.Wrap(err, "load session")
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, false, errors.Wrap(err, "unmarshal session")
	}
	return rec, true, nil
}
