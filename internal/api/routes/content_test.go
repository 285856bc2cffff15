package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"portfolio-api/internal/models"
	"portfolio-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	editor := createTestAdmin(t, cfg, "bob", models.RoleEditor, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	createPost := func(t *testing.T, slug, status string) models.BlogPost {
		w := doJSON(router, "POST", "/api/blog/posts", token, map[string]interface{}{
			"title":   "Post " + slug,
			"slug":    slug,
			"content": "Some content",
			"status":  status,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var post models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		return post
	}

	t.Run("create draft and published posts", func(t *testing.T) {
		draft := createPost(t, "my-draft", "draft")
		assert.Nil(t, draft.PublishedAt)

		published := createPost(t, "my-post", "published")
		assert.NotNil(t, published.PublishedAt)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/blog/posts", token, map[string]interface{}{
			"title":   "Another",
			"slug":    "my-post",
			"content": "body",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Slug already exists")
	})

	t.Run("editor cannot create posts", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/blog/posts", accessTokenFor(t, cfg, editor), map[string]interface{}{
			"title":   "Nope",
			"slug":    "nope",
			"content": "body",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous cannot create posts", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/blog/posts", "", map[string]interface{}{
			"title":   "Nope",
			"slug":    "nope2",
			"content": "body",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("public list defaults to published posts", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/posts", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Items      []models.BlogPost `json:"items"`
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		for _, post := range response.Items {
			assert.Equal(t, models.PostPublished, post.Status)
		}
		assert.Contains(t, w.Body.String(), "my-post")
		assert.NotContains(t, w.Body.String(), "my-draft")
	})

	t.Run("fetch by slug counts a view", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/posts/slug/my-post", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var post models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
		assert.Equal(t, 1, post.ViewsCount)
	})

	t.Run("unknown slug", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/posts/slug/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("draft listing is management only", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/posts?status=draft", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(router, "GET", "/api/blog/posts?status=draft", accessTokenFor(t, cfg, editor), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doJSON(router, "GET", "/api/blog/posts?status=draft", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "my-draft")
	})

	t.Run("draft listing stops once the account is deactivated", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/posts?status=draft", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, models.DB.Model(&models.AdminUser{}).
			Where("id = ?", admin.ID).Update("is_active", false).Error)
		defer models.DB.Model(&models.AdminUser{}).
			Where("id = ?", admin.ID).Update("is_active", true)

		w = doJSON(router, "GET", "/api/blog/posts?status=draft", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User not found or inactive")
	})

	t.Run("invalid status filter", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/posts?status=bogus", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid status")
	})

	t.Run("like a published post", func(t *testing.T) {
		var post models.BlogPost
		require.NoError(t, models.DB.Where("slug = ?", "my-post").First(&post).Error)

		w := doJSON(router, "POST", fmt.Sprintf("/api/blog/posts/%d/like", post.ID), "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"likes_count":1`)
	})

	t.Run("cannot like a draft", func(t *testing.T) {
		var draft models.BlogPost
		require.NoError(t, models.DB.Where("slug = ?", "my-draft").First(&draft).Error)

		w := doJSON(router, "POST", fmt.Sprintf("/api/blog/posts/%d/like", draft.ID), "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Cannot like unpublished posts")
	})

	t.Run("publishing a draft stamps published_at once", func(t *testing.T) {
		var draft models.BlogPost
		require.NoError(t, models.DB.Where("slug = ?", "my-draft").First(&draft).Error)

		w := doJSON(router, "PUT", fmt.Sprintf("/api/blog/posts/%d", draft.ID), token, map[string]interface{}{
			"status": "published",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.NotNil(t, updated.PublishedAt)
		first := *updated.PublishedAt

		// Archive and re-publish; the original timestamp is kept
		doJSON(router, "PUT", fmt.Sprintf("/api/blog/posts/%d", draft.ID), token, map[string]interface{}{
			"status": "archived",
		})
		w = doJSON(router, "PUT", fmt.Sprintf("/api/blog/posts/%d", draft.ID), token, map[string]interface{}{
			"status": "published",
		})
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.NotNil(t, updated.PublishedAt)
		assert.Equal(t, first, *updated.PublishedAt)
	})

	t.Run("stats", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/blog/stats", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "total_posts")
		assert.Contains(t, w.Body.String(), "popular_posts")
	})

	t.Run("delete", func(t *testing.T) {
		var draft models.BlogPost
		require.NoError(t, models.DB.Where("slug = ?", "my-draft").First(&draft).Error)

		w := doJSON(router, "DELETE", fmt.Sprintf("/api/blog/posts/%d", draft.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "GET", fmt.Sprintf("/api/blog/posts/%d", draft.ID), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSkillRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("create skill", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/skills", token, map[string]interface{}{
			"name":              "Go",
			"category":          "technical",
			"proficiency_level": 5,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid category", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/skills", token, map[string]interface{}{
			"name":     "Juggling",
			"category": "circus",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category")
	})

	t.Run("proficiency out of range", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/skills", token, map[string]interface{}{
			"name":              "SQL",
			"category":          "technical",
			"proficiency_level": 9,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "between 1 and 5")
	})

	t.Run("public list and category filter", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/skills?category=technical", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Go")
	})

	t.Run("categories endpoint", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/skills/categories", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "technical")
	})

	t.Run("stats require management role", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/skills/stats", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(router, "GET", "/api/skills/stats", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "proficiency_stats")
	})
}

func TestProjectRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("create with dates", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/projects", token, map[string]interface{}{
			"title":       "Portfolio API",
			"description": "Backend for the portfolio site",
			"status":      "in_progress",
			"start_date":  "2024-01-15",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("bad date format", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/projects", token, map[string]interface{}{
			"title":       "Broken",
			"description": "Bad dates",
			"start_date":  "15/01/2024",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid start_date format. Use YYYY-MM-DD")
	})

	t.Run("invalid status", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/projects", token, map[string]interface{}{
			"title":       "Broken",
			"description": "Bad status",
			"status":      "abandoned",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("public list", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/projects", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Portfolio API")
	})
}

func TestEducationRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("start date is required", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/education", token, map[string]interface{}{
			"institution": "State University",
			"degree":      "BSc",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "start_date")
	})

	t.Run("create and list", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/education", token, map[string]interface{}{
			"institution": "State University",
			"degree":      "BSc",
			"start_date":  "2018-09-01",
			"end_date":    "2022-06-30",
			"gpa":         3.8,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "GET", "/api/education", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "State University")
	})
}

func TestExperienceRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	editor := createTestAdmin(t, cfg, "bob", models.RoleEditor, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("start date is required", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/experience", token, map[string]interface{}{
			"company":  "DataCorp Solutions",
			"position": "Analyst",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "start_date")
	})

	t.Run("bad date format", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/experience", token, map[string]interface{}{
			"company":    "DataCorp Solutions",
			"position":   "Analyst",
			"start_date": "01/06/2023",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid start_date format. Use YYYY-MM-DD")
	})

	t.Run("editor cannot create", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/experience", accessTokenFor(t, cfg, editor), map[string]interface{}{
			"company":    "DataCorp Solutions",
			"position":   "Analyst",
			"start_date": "2023-06-01",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("create and list", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/experience", token, map[string]interface{}{
			"company":      "DataCorp Solutions",
			"position":     "Data Analyst Intern",
			"location":     "Birmingham, AL",
			"start_date":   "2023-06-01",
			"end_date":     "2023-08-15",
			"technologies": `["Python","SQL"]`,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "GET", "/api/experience", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "DataCorp Solutions")
	})

	t.Run("clearing the end date", func(t *testing.T) {
		var record models.WorkExperience
		require.NoError(t, models.DB.Where("company = ?", "DataCorp Solutions").First(&record).Error)

		w := doJSON(router, "PUT", fmt.Sprintf("/api/experience/%d", record.ID), token, map[string]interface{}{
			"end_date":   "",
			"is_current": true,
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var updated models.WorkExperience
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Nil(t, updated.EndDate)
		assert.True(t, updated.IsCurrent)
	})

	t.Run("delete", func(t *testing.T) {
		var record models.WorkExperience
		require.NoError(t, models.DB.Where("company = ?", "DataCorp Solutions").First(&record).Error)

		w := doJSON(router, "DELETE", fmt.Sprintf("/api/experience/%d", record.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "GET", fmt.Sprintf("/api/experience/%d", record.ID), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInterestRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("create interests", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/interests", token, map[string]interface{}{
			"title":       "Alabama Crimson Tide",
			"category":    "sport",
			"description": "Roll Tide!",
			"is_featured": true,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "POST", "/api/interests", token, map[string]interface{}{
			"title":    "Severance",
			"category": "tv_show",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("invalid category", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/interests", token, map[string]interface{}{
			"title":    "Juggling",
			"category": "circus",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category: circus")
	})

	t.Run("public list and category filter", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/interests?category=sport", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alabama Crimson Tide")
		assert.NotContains(t, w.Body.String(), "Severance")
	})

	t.Run("featured filter", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/interests?featured=true", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alabama Crimson Tide")
		assert.NotContains(t, w.Body.String(), "Severance")
	})

	t.Run("invalid category filter", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/interests?category=bogus", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid category: bogus")
	})

	t.Run("categories endpoint", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/interests/categories", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var categories []services.InterestCategoryCount
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
		require.Len(t, categories, 7)

		counts := make(map[string]int64)
		labels := make(map[string]string)
		for _, category := range categories {
			counts[category.Value] = category.Count
			labels[category.Value] = category.Label
		}
		assert.Equal(t, int64(1), counts["sport"])
		assert.Equal(t, int64(1), counts["tv_show"])
		assert.Equal(t, int64(0), counts["book"])
		assert.Equal(t, "TV Show", labels["tv_show"])
	})

	t.Run("anonymous cannot create", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/interests", "", map[string]interface{}{
			"title":    "Nope",
			"category": "hobby",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("update and delete", func(t *testing.T) {
		var interest models.Interest
		require.NoError(t, models.DB.Where("title = ?", "Severance").First(&interest).Error)

		w := doJSON(router, "PUT", fmt.Sprintf("/api/interests/%d", interest.ID), token, map[string]interface{}{
			"is_featured": true,
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_featured":true`)

		w = doJSON(router, "DELETE", fmt.Sprintf("/api/interests/%d", interest.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "GET", fmt.Sprintf("/api/interests/%d", interest.ID), "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPortfolioSummaryRoute(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("empty portfolio", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/summary", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var summary services.PortfolioSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Zero(t, summary.EducationCount)
		assert.Nil(t, summary.CurrentEducation)
		assert.Nil(t, summary.CurrentExperience)
		assert.Empty(t, summary.FeaturedInterests)
	})

	t.Run("populated portfolio", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/education", token, map[string]interface{}{
			"institution": "State University",
			"degree":      "BSc",
			"start_date":  "2022-08-01",
			"is_current":  true,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "POST", "/api/experience", token, map[string]interface{}{
			"company":    "DataCorp Solutions",
			"position":   "Data Analyst Intern",
			"start_date": "2024-06-01",
			"is_current": true,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "POST", "/api/interests", token, map[string]interface{}{
			"title":       "Golf",
			"category":    "hobby",
			"is_featured": true,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(router, "GET", "/api/summary", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var summary services.PortfolioSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, int64(1), summary.EducationCount)
		assert.Equal(t, int64(1), summary.ExperienceCount)
		assert.Equal(t, int64(1), summary.InterestsCount)
		require.NotNil(t, summary.CurrentEducation)
		assert.Equal(t, "State University", summary.CurrentEducation.Institution)
		require.NotNil(t, summary.CurrentExperience)
		assert.Equal(t, "DataCorp Solutions", summary.CurrentExperience.Company)
		require.Len(t, summary.FeaturedInterests, 1)
		assert.Equal(t, "Golf", summary.FeaturedInterests[0].Title)
	})
}

func TestContactRoutes(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	admin := createTestAdmin(t, cfg, "alice", models.RoleAdmin, true)
	editor := createTestAdmin(t, cfg, "bob", models.RoleEditor, true)
	router := setupTestRouter(cfg)
	token := accessTokenFor(t, cfg, admin)

	t.Run("public contact card", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/contact/info", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "email")
	})

	t.Run("public submission", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/contact", "", map[string]interface{}{
			"name":    "Visitor",
			"email":   "visitor@example.com",
			"message": "Hello there",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Message sent successfully")
	})

	t.Run("invalid email", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/contact", "", map[string]interface{}{
			"name":    "Visitor",
			"email":   "not-an-email",
			"message": "Hello",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email format")
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(router, "POST", "/api/contact", "", map[string]interface{}{
			"name": "Visitor",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("inbox is management only", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/messages", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = doJSON(router, "GET", "/api/messages", accessTokenFor(t, cfg, editor), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = doJSON(router, "GET", "/api/messages", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "visitor@example.com")
	})

	t.Run("reading a new message marks it read", func(t *testing.T) {
		var message models.Message
		require.NoError(t, models.DB.Where("email = ?", "visitor@example.com").First(&message).Error)
		require.Equal(t, models.MessageNew, message.Status)

		w := doJSON(router, "GET", fmt.Sprintf("/api/messages/%d", message.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, models.DB.First(&message, message.ID).Error)
		assert.Equal(t, models.MessageRead, message.Status)
	})

	t.Run("status lifecycle", func(t *testing.T) {
		var message models.Message
		require.NoError(t, models.DB.Where("email = ?", "visitor@example.com").First(&message).Error)

		w := doJSON(router, "PUT", fmt.Sprintf("/api/messages/%d/status", message.ID), token, map[string]string{
			"status": "replied",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "PUT", fmt.Sprintf("/api/messages/%d/status", message.ID), token, map[string]string{
			"status": "lost",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid status")
	})

	t.Run("stats", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/messages/stats", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "total_messages")
	})

	t.Run("delete", func(t *testing.T) {
		var message models.Message
		require.NoError(t, models.DB.Where("email = ?", "visitor@example.com").First(&message).Error)

		w := doJSON(router, "DELETE", fmt.Sprintf("/api/messages/%d", message.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, "GET", fmt.Sprintf("/api/messages/%d", message.ID), token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
