package dto

import (
	"mime/multipart"
	"praxis/internal/domains/post/model"
	"praxis/shared"
	"praxis/shared/constant"
	gDto "praxis/shared/dto"
	gModel "praxis/shared/model"
	"praxis/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title      string `json:"title"       validate:"required,min=3,max=200"`
	Slug       string `json:"slug"        validate:"omitempty,max=200"`
	Excerpt    string `json:"excerpt"     validate:"omitempty,max=500"`
	Body       string `json:"body"        validate:"required"`
	CoverImage string `json:"cover_image" validate:"omitempty,url"`
}

func (c *CreatePostRequest) ToModel(user string) model.Post {
	slug := c.Slug
	if slug == constant.Empty {
		slug = Slugify(c.Title)
	}

	now := timezone.Now()

	return model.Post{
		ID:         uuid.NewString(),
		Title:      c.Title,
		Slug:       slug,
		Excerpt:    c.Excerpt,
		Body:       c.Body,
		CoverImage: c.CoverImage,
		Published:  false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// Slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(title string) string {
	var builder strings.Builder

	lastHyphen := true

	for _, r := range strings.ToLower(title) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')

		if isAlnum {
			builder.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			builder.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(builder.String(), "-")
}

type UpdatePostRequest struct {
	Title      string `db:"title"       json:"title"       validate:"omitempty,min=3,max=200"`
	Slug       string `db:"slug"        json:"slug"        validate:"omitempty,max=200"`
	Excerpt    string `db:"excerpt"     json:"excerpt"     validate:"omitempty,max=500"`
	Body       string `db:"body"        json:"body"        validate:"omitempty"`
	CoverImage string `db:"cover_image" json:"cover_image" validate:"omitempty,url"`
}

type PostResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	CoverImage  string `json:"cover_image"`
	Published   bool   `json:"published"`
	PublishedAt string `json:"published_at,omitempty"`
	gDto.Metadata
}

func (r *PostResponse) FromModel(model model.Post) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Excerpt = model.Excerpt
	r.Body = model.Body
	r.CoverImage = model.CoverImage
	r.Published = model.Published

	if model.PublishedAt != nil {
		r.PublishedAt = timezone.Format(*model.PublishedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(models []model.Post, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostResponse, len(models))
	for i, mod := range models {
		r.Posts[i].FromModel(mod)
	}
}

type UploadCoverRequest struct {
	Cover     *multipart.FileHeader `json:"cover" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	CoverFile multipart.File        `json:"-"`
}

type UploadCoverResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadCoverResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
