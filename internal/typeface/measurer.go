package typeface

import (
	"sync"

	"github.com/neocapy/friend-reader/internal/layout"
)

type faceKey struct {
	family string
	size   float64
}

// Measurer — реестр шрифтов, реализующий layout.Measurer. Грани (Face)
// создаются лениво на пару семейство/кегль и переиспользуются между
// перевёрстками. Потокобезопасен.
type Measurer struct {
	mu      sync.Mutex
	sources map[string]*Source
	faces   map[faceKey]*Face
	def     *Source
}

func NewMeasurer() *Measurer {
	return &Measurer{
		sources: make(map[string]*Source),
		faces:   make(map[faceKey]*Face),
	}
}

// Register добавляет шрифт под именем family; первый зарегистрированный
// становится запасным для неизвестных семейств.
func (m *Measurer) Register(family string, src *Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[family] = src
	if m.def == nil {
		m.def = src
	}
}

// Families — зарегистрированные семейства (для списка в настройках).
func (m *Measurer) Families() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.sources))
	for name := range m.sources {
		out = append(out, name)
	}
	return out
}

// Measure реализует layout.Measurer. Без единого зарегистрированного
// шрифта меряет нулём: колонка схлопнется видимым образом вместо паники.
func (m *Measurer) Measure(text string, p layout.Params) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.face(p.Font, p.Size)
	if err != nil || f == nil {
		return 0
	}
	return f.MeasureHeight(text, p.Width)
}

func (m *Measurer) face(family string, size float64) (*Face, error) {
	key := faceKey{family: family, size: size}
	if f, ok := m.faces[key]; ok {
		return f, nil
	}
	src, ok := m.sources[family]
	if !ok {
		src = m.def
	}
	if src == nil {
		return nil, nil
	}
	f, err := newFace(src, size)
	if err != nil {
		return nil, err
	}
	m.faces[key] = f
	return f, nil
}
