package model

// SlugPair связывает идентификатор с вычисленным для него slug
type SlugPair struct {
	ID   CounselorID `json:"profile_id"`
	Slug Slug        `json:"slug"`
}

// ProfileLink представляет элемент ответа со ссылкой на профиль консультанта
type ProfileLink struct {
	ID   CounselorID `json:"profile_id"`
	Name string      `json:"name,omitempty"`
	Slug Slug        `json:"slug"`
	URL  string      `json:"url"`
}

// ProfileResponse ответ страницы обзора профиля
type ProfileResponse struct {
	Slug      Slug      `json:"slug"`
	URL       string    `json:"url"`
	Counselor Counselor `json:"counselor"`
}

// SlugCheckReport результат самопроверки системы slug
type SlugCheckReport struct {
	KeyValid      bool        `json:"key_valid"`
	Deterministic bool        `json:"deterministic"`
	SampleID      CounselorID `json:"sample_id,omitempty"`
	SampleSlug    Slug        `json:"sample_slug,omitempty"`
	RoundTrip     *bool       `json:"round_trip,omitempty"`
}
