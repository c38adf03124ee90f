package models

// Blog — запись таблицы blogs. Имена JSON-полей совпадают с колонками:
// их в таком виде ожидает публичный фронтенд.
type Blog struct {
	ID       int    `db:"id"       json:"id"`
	Title    string `db:"title"    json:"title"`
	Article  string `db:"article"  json:"article"`
	Status   string `db:"status"   json:"status"`
	ImageURL string `db:"imageurl" json:"imageurl"`
	Main     bool   `db:"main"     json:"main"`
	// Дата создания в отображаемом формате D-MM-YYYY, не сортируемая.
	// Сортировка списков всегда по id DESC.
	Datetime string `db:"datetime" json:"datetime"`
	Slug     string `db:"slug"     json:"slug"`
}

// swagger:model CreateBlogRequest
type CreateBlogRequest struct {
	Title    string `json:"title"    example:"Как мы переехали на Go"`
	Article  string `json:"article"  example:"Текст статьи"`
	Status   string `json:"status"   example:"published"`
	ImageURL string `json:"imageurl" example:"https://cdn.example.com/cover.png"`
	// Значение чекбокса из формы: "on" — избранная статья, всё остальное — нет.
	Check string `json:"check" example:"on"`
}
