// Package game drives a level one fixed step at a time and exposes the
// polled state queries and drawables the client needs.
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNoLevels    = errors.New("no levels")
	ErrNoNextLevel = errors.New("no next level")
)

// Input is the per-tick key snapshot.
type Input = components.InputData

// Option configures a Session.
type Option func(*Session)

// WithCatalog replaces the default tile catalog.
func WithCatalog(c tiles.Catalog) Option {
	return func(s *Session) {
		s.catalog = c
	}
}

// WithStartLevel starts a campaign at the given index.
func WithStartLevel(index int) Option {
	return func(s *Session) {
		s.index = index
	}
}

// WithRenderers registers draw functions on every level the session loads.
// The client passes its renderer here; the core never draws.
func WithRenderers(register ...func(*ecs.ECS)) Option {
	return func(s *Session) {
		s.renderers = append(s.renderers, register...)
	}
}

// carry is the player progress kept across level loads.
type carry struct {
	coins int
	lives int
}

// Session owns the current level world and the campaign around it.
type Session struct {
	docs    []*leveldata.Document
	index   int
	catalog tiles.Catalog

	renderers []func(*ecs.ECS)

	world    *level.World
	entry    carry
	spawnErr error
}

// NewSession creates a single-level session.
func NewSession(doc *leveldata.Document, opts ...Option) (*Session, error) {
	return NewCampaign([]*leveldata.Document{doc}, opts...)
}

// NewCampaign creates a session that plays docs in order. The first level
// is loaded immediately; entity errors are kept in SpawnErrors.
func NewCampaign(docs []*leveldata.Document, opts ...Option) (*Session, error) {
	if len(docs) == 0 {
		return nil, ErrNoLevels
	}
	s := &Session{
		docs:    docs,
		catalog: tiles.DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.catalog.Validate(); err != nil {
		return nil, fmt.Errorf("tile catalog: %w", err)
	}
	if s.index < 0 || s.index >= len(docs) {
		return nil, fmt.Errorf("start level %d: %w", s.index, ErrNoLevels)
	}

	if err := s.load(s.index, carry{lives: cfg.Player.StartingLives}); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load(index int, c carry) error {
	w, err := factory.CreateLevel(s.docs[index], s.catalog)
	if w == nil {
		return err
	}

	lvl := w.Level()
	lvl.LevelIndex = index
	lvl.LevelCount = len(s.docs)

	systems.AddTickSystems(w.ECS)
	for _, register := range s.renderers {
		register(w.ECS)
	}

	s.world = w
	s.index = index
	s.entry = c
	s.spawnErr = err

	if player, ok := w.Player(); ok {
		components.Player.Get(player).Coins = c.coins
		components.Lives.Get(player).Lives = c.lives
	}
	return nil
}

func (s *Session) progress() carry {
	player, ok := s.world.Player()
	if !ok {
		return s.entry
	}
	return carry{
		coins: components.Player.Get(player).Coins,
		lives: components.Lives.Get(player).Lives,
	}
}

// Tick advances the simulation by dt with the given input. It does nothing
// while paused or once the player is out of lives.
func (s *Session) Tick(dt time.Duration, in Input) {
	w := s.world
	if w.Level().OutOfLives || w.ECS.IsPaused() {
		return
	}
	w.Advance(dt)
	if player, ok := w.Player(); ok {
		components.Input.SetValue(player, in)
	}
	w.ECS.Update()
}

// Draw runs the registered renderers with screen.
func (s *Session) Draw(screen any) {
	s.world.ECS.Draw(screen)
}

// Pause freezes the current level until Resume. Loading another level
// starts unpaused.
func (s *Session) Pause() {
	s.world.ECS.Pause()
}

func (s *Session) Resume() {
	s.world.ECS.Resume()
}

func (s *Session) IsPaused() bool {
	return s.world.ECS.IsPaused()
}

// IsGameOver reports that the player has run out of lives.
func (s *Session) IsGameOver() bool {
	return s.world.Level().OutOfLives
}

// IsFinishReached reports that the player has touched a finish tile.
func (s *Session) IsFinishReached() bool {
	return s.world.Level().FinishReached
}

// IsNextLevel reports that the level is finished and another one follows.
func (s *Session) IsNextLevel() bool {
	return s.IsFinishReached() && s.index+1 < len(s.docs)
}

// Restart rebuilds the current level with the progress the player had on
// entering it.
func (s *Session) Restart() error {
	log.Printf("Restarting level %s", s.docs[s.index].Name)
	return s.load(s.index, s.entry)
}

// AdvanceLevel loads the next level, keeping coins and lives.
func (s *Session) AdvanceLevel() error {
	next := s.index + 1
	if next >= len(s.docs) {
		return ErrNoNextLevel
	}
	return s.load(next, s.progress())
}

// Reload swaps in new documents, for example after an edit on disk, and
// rebuilds the current level. The index is clamped to the new list.
func (s *Session) Reload(docs []*leveldata.Document) error {
	if len(docs) == 0 {
		return ErrNoLevels
	}
	s.docs = docs
	return s.load(min(s.index, len(docs)-1), s.entry)
}

// SpawnErrors returns the entity failures of the current level, if any.
func (s *Session) SpawnErrors() error {
	return s.spawnErr
}

// World exposes the current level world.
func (s *Session) World() *level.World {
	return s.world
}

// Camera returns the top-left of the view in world pixels.
func (s *Session) Camera() math.Vec2 {
	return CameraOf(s.world)
}

// CameraOf returns the top-left of w's view in world pixels.
func CameraOf(w *level.World) math.Vec2 {
	if camera, ok := w.Camera(); ok {
		return components.Camera.Get(camera).Position
	}
	return math.Vec2{}
}

// Stats is the HUD snapshot.
type Stats struct {
	Level      string
	LevelIndex int
	LevelCount int

	Coins     int
	Lives     int
	Health    int
	MaxHealth int

	JumpBoost  bool
	NearPortal bool
	Elapsed    time.Duration
}

// Stats returns the current HUD values.
func (s *Session) Stats() Stats {
	return StatsOf(s.world)
}

// StatsOf reads the HUD values from a level world.
func StatsOf(w *level.World) Stats {
	lvl := w.Level()
	st := Stats{
		Level:      lvl.Name,
		LevelIndex: lvl.LevelIndex,
		LevelCount: lvl.LevelCount,
		Elapsed:    lvl.Now,
	}
	player, ok := w.Player()
	if !ok {
		return st
	}
	data := components.Player.Get(player)
	health := components.Health.Get(player)
	st.Coins = data.Coins
	st.Lives = components.Lives.Get(player).Lives
	st.Health = health.Current
	st.MaxHealth = health.Max
	st.JumpBoost = data.JumpBoost != 1
	st.NearPortal = data.NearPortal
	return st
}
