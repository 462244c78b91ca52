package model

import "errors"

// ErrCounselorNotFound возвращается справочником, если консультанта с таким идентификатором нет
var ErrCounselorNotFound = errors.New("counselor not found")

// RoleCounselor роль профиля, попадающего в справочник консультантов
const RoleCounselor = "counselor"

// CounselorID внутренний идентификатор консультанта (UUID профиля)
type CounselorID string

func (id CounselorID) String() string {
	return string(id)
}

// Slug публичный токен профиля фиксированной длины
type Slug string

func (s Slug) String() string {
	return string(s)
}

// CounselorRef минимальная запись справочника, достаточная для перебора при разрешении slug
type CounselorRef struct {
	ID   CounselorID `json:"profile_id"`
	Name string      `json:"name"`
}

// Counselor полная карточка консультанта (profiles + counselors)
type Counselor struct {
	ID                   CounselorID `json:"profile_id"`
	Name                 string      `json:"name"`
	Role                 string      `json:"role"`
	ShortIntroduction    string      `json:"short_introduction,omitempty"`
	YearsOfExperience    int         `json:"years_of_experience"`
	AverageRating        float64     `json:"average_rating"`
	ReviewCount          int         `json:"review_count"`
	CenterName           string      `json:"center_name,omitempty"`
	CenterAddress        string      `json:"center_address,omitempty"`
	IntroductionGreeting string      `json:"introduction_greeting,omitempty"`
	IsVerified           bool        `json:"is_verified"`
	TotalCounselingCount int         `json:"total_counseling_count"`
	ProfileImageURL      string      `json:"profile_image_url,omitempty"`
}

// Ref возвращает ссылку на консультанта для справочника
func (c Counselor) Ref() CounselorRef {
	return CounselorRef{ID: c.ID, Name: c.Name}
}
