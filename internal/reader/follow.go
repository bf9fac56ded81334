package reader

import "math"

// Параметры догоняющей прокрутки.
const (
	// snapDistance — дальше этого прыгаем мгновенно, анимация на таких
	// дистанциях выглядит как слайд-шоу.
	snapDistance = 2000.0
	// порог и скорости подъезда, пикселей за тик
	fastDistance = 500.0
	fastSpeed    = 50.0
	slowSpeed    = 20.0
)

// Follower хранит, за кем едем. Пустая цель — режим выключен.
type Follower struct {
	target string
}

func (f *Follower) Follow(name string) { f.target = name }
func (f *Follower) Cancel()            { f.target = "" }

func (f *Follower) Target() (string, bool) {
	return f.target, f.target != ""
}

// FollowStep — одна итерация догоняющей прокрутки: скачок при большом
// разрыве, иначе шаг с двухступенчатой скоростью без перелёта.
func FollowStep(current, target float64) float64 {
	dist := math.Abs(target - current)
	if dist > snapDistance {
		return target
	}
	speed := slowSpeed
	if dist > fastDistance {
		speed = fastSpeed
	}
	step := math.Min(speed, dist)
	if target < current {
		step = -step
	}
	return current + step
}
