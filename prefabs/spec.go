package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const (
	WorldFile      = "world.yaml"
	PlayerFile     = "player.yaml"
	KoboldFile     = "kobold.yaml"
	StructuresFile = "structures.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	if v, ok := any(&spec).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return zero, fmt.Errorf("prefabs: validate %s: %w", filename, err)
		}
	}

	return spec, nil
}

// WorldSpec controls cave generation and the initial population.
type WorldSpec struct {
	Name             string  `yaml:"name"`
	Seed             uint64  `yaml:"seed"`
	ChunkSize        int     `yaml:"chunk_size"`
	FillPercent      int     `yaml:"fill_percent"`
	SmoothIterations int     `yaml:"smooth_iterations"`
	WallHardness     float32 `yaml:"wall_hardness"`
	OreChance        int     `yaml:"ore_chance"`
	OreHardness      float32 `yaml:"ore_hardness"`
	IronMin          int     `yaml:"iron_min"`
	IronMax          int     `yaml:"iron_max"`
	Kobolds          int     `yaml:"kobolds"`
	SpawnMinDistance int     `yaml:"spawn_min_distance"`
}

func (s *WorldSpec) Validate() error {
	switch {
	case s.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk_size must be positive", ErrInvalidSpec)
	case s.FillPercent < 0 || s.FillPercent > 100:
		return fmt.Errorf("%w: fill_percent must be in [0,100]", ErrInvalidSpec)
	case s.SmoothIterations < 0:
		return fmt.Errorf("%w: smooth_iterations must not be negative", ErrInvalidSpec)
	case s.WallHardness <= 0:
		return fmt.Errorf("%w: wall_hardness must be positive", ErrInvalidSpec)
	case s.OreChance < 0 || s.OreChance > 100:
		return fmt.Errorf("%w: ore_chance must be in [0,100]", ErrInvalidSpec)
	case s.OreChance > 0 && s.OreHardness <= 0:
		return fmt.Errorf("%w: ore_hardness must be positive", ErrInvalidSpec)
	case s.IronMin < 0 || s.IronMax < s.IronMin:
		return fmt.Errorf("%w: iron range [%d,%d]", ErrInvalidSpec, s.IronMin, s.IronMax)
	case s.Kobolds < 0:
		return fmt.Errorf("%w: kobolds must not be negative", ErrInvalidSpec)
	}
	return nil
}

type PlayerSpec struct {
	Name         string  `yaml:"name"`
	MaxHP        float32 `yaml:"max_hp"`
	MiningSpeed  float32 `yaml:"mining_speed"`
	AttackDamage float32 `yaml:"attack_damage"`
}

func (s *PlayerSpec) Validate() error {
	if s.MaxHP <= 0 {
		return fmt.Errorf("%w: max_hp must be positive", ErrInvalidSpec)
	}
	if s.MiningSpeed < 0 || s.AttackDamage < 0 {
		return fmt.Errorf("%w: mining_speed and attack_damage must not be negative", ErrInvalidSpec)
	}
	return nil
}

type KoboldSpec struct {
	Name         string  `yaml:"name"`
	MaxHP        float32 `yaml:"max_hp"`
	AggroRange   float64 `yaml:"aggro_range"`
	AttackDamage float32 `yaml:"attack_damage"`
	// PathCutoff bounds A* to this many nodes per world unit of distance.
	PathCutoff float64 `yaml:"path_cutoff"`
	Brain      string  `yaml:"brain"`
}

func (s *KoboldSpec) Validate() error {
	if s.MaxHP <= 0 {
		return fmt.Errorf("%w: max_hp must be positive", ErrInvalidSpec)
	}
	if s.AggroRange < 0 {
		return fmt.Errorf("%w: aggro_range must not be negative", ErrInvalidSpec)
	}
	if s.PathCutoff <= 0 {
		return fmt.Errorf("%w: path_cutoff must be positive", ErrInvalidSpec)
	}
	return nil
}

// StructureSpec describes one buildable structure. Width and Height are in tiles.
type StructureSpec struct {
	Kind     string  `yaml:"kind"`
	Name     string  `yaml:"name"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	HP       float32 `yaml:"hp"`
	Collides bool    `yaml:"collides"`
}

type StructuresSpec struct {
	Structures []StructureSpec `yaml:"structures"`
}

func (s *StructuresSpec) Validate() error {
	if len(s.Structures) == 0 {
		return fmt.Errorf("%w: no structures", ErrInvalidSpec)
	}
	seen := make(map[string]bool, len(s.Structures))
	for _, st := range s.Structures {
		if st.Kind == "" {
			return fmt.Errorf("%w: structure without kind", ErrInvalidSpec)
		}
		if seen[st.Kind] {
			return fmt.Errorf("%w: duplicate structure %q", ErrInvalidSpec, st.Kind)
		}
		seen[st.Kind] = true
		if st.Width <= 0 || st.Height <= 0 || st.HP <= 0 {
			return fmt.Errorf("%w: structure %q needs positive width, height and hp", ErrInvalidSpec, st.Kind)
		}
	}
	return nil
}

// Find returns the structure with the given kind.
func (s *StructuresSpec) Find(kind string) (StructureSpec, bool) {
	if s == nil {
		return StructureSpec{}, false
	}
	for _, st := range s.Structures {
		if st.Kind == kind {
			return st, true
		}
	}
	return StructureSpec{}, false
}

// Specs bundles every spec the game needs.
type Specs struct {
	World      WorldSpec
	Player     PlayerSpec
	Kobold     KoboldSpec
	Structures StructuresSpec
}

// LoadAll loads and validates every spec file.
func LoadAll() (*Specs, error) {
	var (
		specs Specs
		err   error
	)
	if specs.World, err = LoadSpec[WorldSpec](WorldFile); err != nil {
		return nil, err
	}
	if specs.Player, err = LoadSpec[PlayerSpec](PlayerFile); err != nil {
		return nil, err
	}
	if specs.Kobold, err = LoadSpec[KoboldSpec](KoboldFile); err != nil {
		return nil, err
	}
	if specs.Structures, err = LoadSpec[StructuresSpec](StructuresFile); err != nil {
		return nil, err
	}
	return &specs, nil
}
