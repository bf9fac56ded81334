package domain

// Документ — неизменяемая модель книги: метаданные плюс упорядоченный
// список элементов. Адресация позиций во всей системе — индекс элемента
// в этом списке, байтовых смещений нет.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Elements Elements `json:"elements"`
}

// Метаданные книги; любое поле может отсутствовать.
type Metadata struct {
	Title    *string `json:"title"`
	Language *string `json:"language"`
	Author   *string `json:"author"`
}

// Position — видимый диапазон читателя в индексах элементов.
// Поля *Percent зарезервированы под внутриэлементную точность;
// расчёт видимого диапазона сейчас всегда пишет 0.0/1.0.
type Position struct {
	StartElement int     `json:"start_element"`
	StartPercent float64 `json:"start_percent"`
	EndElement   int     `json:"end_element"`
	EndPercent   float64 `json:"end_percent"`
}

// ConnectedUser — то, что читатель публикует и что видят остальные.
// Идентичность — display name: уникальность НЕ гарантируется, два
// читателя с одним именем перезаписывают записи друг друга.
type ConnectedUser struct {
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Position Position `json:"position"`
}

// PositionUpdate — тело POST /update_position.
type PositionUpdate struct {
	Name         string   `json:"name"`
	Color        string   `json:"color"`
	Position     Position `json:"position"`
	PasswordHash string   `json:"password_hash,omitempty"`
}

// UsersResponse — тело GET /positions.
type UsersResponse struct {
	Users map[string]ConnectedUser `json:"users"`
}

// HealthResponse — тело GET /health.
type HealthResponse struct {
	Status           string `json:"status"`
	RequiresPassword bool   `json:"requires_password"`
}
