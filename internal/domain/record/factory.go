package record

import (
	"fmt"
	"time"
)

// Factory - фабрика для создания записей из полей запроса
type Factory struct {
	ids    *IDGenerator
	now    func() time.Time
	strict bool
}

// NewFactory создает новую фабрику. В строгом режиме обязательные поля
// проверяются, иначе пустые значения сохраняются как есть.
func NewFactory(ids *IDGenerator, now func() time.Time, strict bool) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{
		ids:    ids,
		now:    now,
		strict: strict,
	}
}

// Strict сообщает, включена ли строгая валидация.
func (f *Factory) Strict() bool {
	return f.strict
}

// ValidatePost валидирует поля поста (только в строгом режиме)
func (f *Factory) ValidatePost(fields PostFields) error {
	if !f.strict {
		return nil
	}
	return fields.Validate()
}

// ValidateJob валидирует поля вакансии (только в строгом режиме)
func (f *Factory) ValidateJob(fields JobFields) error {
	if !f.strict {
		return nil
	}
	return fields.Validate()
}

// NewPost создает пост. media - публичный путь вложения или пустая строка.
func (f *Factory) NewPost(fields PostFields, media string) (*Post, error) {
	if err := f.ValidatePost(fields); err != nil {
		return nil, fmt.Errorf("post validation failed: %w", err)
	}

	typ := fields.Type
	if typ == "" {
		typ = DefaultPostType
	}

	return &Post{
		ID:      f.ids.Next(),
		Title:   fields.Title,
		Content: fields.Content,
		Type:    typ,
		Media:   media,
		Date:    FormatDate(f.now()),
	}, nil
}

// NewJob создает вакансию. Поля копируются без значений по умолчанию.
func (f *Factory) NewJob(fields JobFields) (*Job, error) {
	if err := f.ValidateJob(fields); err != nil {
		return nil, fmt.Errorf("job validation failed: %w", err)
	}

	return &Job{
		ID:      f.ids.Next(),
		Title:   fields.Title,
		Link:    fields.Link,
		Company: fields.Company,
		Date:    FormatDate(f.now()),
	}, nil
}
