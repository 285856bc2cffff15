package services

import (
	"time"

	"portfolio-api/internal/models"
)

// SeedSampleData populates an empty database with starter content so a
// fresh install has something to render. It is a no-op when content
// already exists.
func SeedSampleData() error {
	var count int64
	if err := models.DB.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	level := func(n int) *int { return &n }

	skills := []models.Skill{
		{Name: "Python", Category: models.SkillTechnical, ProficiencyLevel: level(4), Description: "Backend development, data analysis, automation", Icon: "python", IsFeatured: true},
		{Name: "React", Category: models.SkillTechnical, ProficiencyLevel: level(3), Description: "Frontend development, component-based architecture", Icon: "react"},
		{Name: "MySQL", Category: models.SkillTechnical, ProficiencyLevel: level(4), Description: "Database design, queries, optimization", Icon: "mysql", IsFeatured: true},
		{Name: "Communication", Category: models.SkillSoft, ProficiencyLevel: level(5), Description: "Technical writing, presentations, client relations", Icon: "communication", IsFeatured: true},
		{Name: "Spanish", Category: models.SkillLanguage, ProficiencyLevel: level(3), Description: "Conversational Spanish for business communication", Icon: "language"},
	}
	for i := range skills {
		if err := models.DB.Create(&skills[i]).Error; err != nil {
			return err
		}
	}

	start := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	project := models.Project{
		Title:        "Portfolio Website",
		Description:  "Personal portfolio website showcasing skills, projects, and professional experience",
		Technologies: `["React","Go","MySQL","Docker"]`,
		Status:       models.ProjectInProgress,
		StartDate:    &start,
		IsFeatured:   true,
	}
	if err := models.DB.Create(&project).Error; err != nil {
		return err
	}

	eduStart := time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)
	eduEnd := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	gpa := 3.2
	education := models.Education{
		Institution:  "The University of Alabama",
		Degree:       "Bachelor of Science",
		FieldOfStudy: "Management Information Systems",
		GPA:          &gpa,
		StartDate:    eduStart,
		EndDate:      &eduEnd,
		IsCurrent:    true,
		Description:  "Senior year student with Computer Science minor.",
		Achievements: "Dean's List, MIS Student Association Member",
	}
	if err := models.DB.Create(&education).Error; err != nil {
		return err
	}

	workStart := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	workEnd := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	experience := models.WorkExperience{
		Company:      "University of Alabama",
		Position:     "Student Assistant - IT Department",
		Location:     "Tuscaloosa, AL",
		StartDate:    workStart,
		EndDate:      &workEnd,
		Description:  "Provided technical support to faculty and students, maintained computer labs, and assisted with IT projects.",
		Achievements: "Improved lab efficiency by 20%, received recognition for excellent customer service",
		Technologies: `["Windows","macOS","Network Troubleshooting","Hardware Repair"]`,
	}
	if err := models.DB.Create(&experience).Error; err != nil {
		return err
	}

	interests := []models.Interest{
		{Title: "Alabama Crimson Tide", Category: models.InterestSport, Description: "College football team - Roll Tide!", IsFeatured: true},
		{Title: "Cooking", Category: models.InterestHobby, Description: "Experimenting with new recipes and cooking techniques", IsFeatured: true},
		{Title: "Golf", Category: models.InterestHobby, Description: "Weekend golfing and tournaments", IsFeatured: true},
		{Title: "Movies", Category: models.InterestMovie, Description: "Action, drama, and sci-fi films"},
		{Title: "Coding", Category: models.InterestHobby, Description: "Personal projects and learning new technologies", IsFeatured: true},
	}
	for i := range interests {
		if err := models.DB.Create(&interests[i]).Error; err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	post := models.BlogPost{
		Title:       "Welcome to My Portfolio!",
		Slug:        "welcome-to-my-portfolio",
		Content:     "Welcome to my personal portfolio website! This site showcases my journey, skills, and projects.",
		Excerpt:     "Welcome to my personal portfolio website!",
		Status:      models.PostPublished,
		PublishedAt: &now,
	}
	if err := models.DB.Create(&post).Error; err != nil {
		return err
	}

	message := models.Message{
		Name:    "Sarah Johnson",
		Email:   "sarah.johnson@company.com",
		Subject: "Internship Opportunity",
		Body:    "I came across your portfolio and was impressed by your projects and skills. Would you be interested in learning more about an internship with our data analytics team?",
		Company: "DataCorp Solutions",
		Phone:   "(555) 123-4567",
	}
	return models.DB.Create(&message).Error
}
