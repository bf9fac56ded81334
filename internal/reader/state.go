package reader

// State — этап жизни сессии чтения.
type State int

const (
	StateLogin State = iota
	StateLoading
	StateReading
	StateError
)

func (s State) String() string {
	switch s {
	case StateLogin:
		return "login"
	case StateLoading:
		return "loading"
	case StateReading:
		return "reading"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Геометрия читалки. Рендер обязан резать вьюпорт так же,
// иначе ширина колонки разойдётся с расчётной.
const (
	MinimapWidth    = 90.0
	MinSideMargin   = 50.0
	MinContentWidth = 200.0
)

// Поведение ручной прокрутки.
const (
	wheelDeadzone = 0.1
	arrowStep     = 50.0
	pageFraction  = 0.8
	// overscroll — насколько можно заехать за последний элемент
	overscroll = 100.0
)

// Input — сырой пользовательский ввод за один тик.
type Input struct {
	// Wheel — дельта колеса/тачпада; положительная крутит вверх.
	Wheel float64
	// Нажатия клавиш (по фронту, не удержание).
	ArrowDown bool
	ArrowUp   bool
	PageDown  bool // пробел
	Escape    bool
}

// Peer — чужой (или собственный) курсор для отрисовки.
type Peer struct {
	Name  string
	Color string
	// Диапазон в индексах элементов, как его прислал владелец.
	// Может выходить за текущую вёрстку: прижимайте layout.ClampIndex.
	Start int
	End   int
	// Ratio — доля прогресса 0..1 для мини-карты.
	Ratio float64

	Self      bool
	Following bool
}

// Frame — всё, что нужно рендеру после тика.
type Frame struct {
	State State
	Err   string

	// Оффлайн: документ из кэша, синхронизация выключена.
	Offline bool

	ContentWidth float64
	Scroll       float64
	TotalHeight  float64

	// Видимый диапазон и собственный прогресс.
	First int
	Last  int
	Ratio float64

	Peers        []Peer
	FollowTarget string
}
