package handler

import (
	"errors"
	"net/http"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AboutConfigRequest defines the structure for about config updates
// with merge-on-update semantics
type AboutConfigRequest struct {
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

// JourneyItemRequest defines the admin-form shape for journey
// entries. The form submits yearRange and company; they are stored as
// period and organization. Responses always use the storage names.
type JourneyItemRequest struct {
	AboutConfigID uint   `json:"about_config_id"`
	YearRange     string `json:"yearRange"`
	Company       string `json:"company"`
	Role          string `json:"role"`
	Description   string `json:"description"`
	Order         *int   `json:"order"`
	IsActive      *bool  `json:"is_active"`
}

// EducationRequest defines the admin-form shape for education
// entries. The form submits degree; it is stored as qualification.
type EducationRequest struct {
	AboutConfigID uint   `json:"about_config_id"`
	Degree        string `json:"degree"`
	Institution   string `json:"institution"`
	Year          string `json:"year"`
	Description   string `json:"description"`
	Order         *int   `json:"order"`
	IsActive      *bool  `json:"is_active"`
}

// AchievementRequest defines the structure for achievement entries
type AchievementRequest struct {
	AboutConfigID uint   `json:"about_config_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Year          string `json:"year"`
	Icon          string `json:"icon"`
	Order         *int   `json:"order"`
	IsActive      *bool  `json:"is_active"`
}

// SpeakingRequest defines the structure for speaking engagement entries
type SpeakingRequest struct {
	AboutConfigID uint   `json:"about_config_id"`
	Title         string `json:"title"`
	Event         string `json:"event"`
	Year          string `json:"year"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	Order         *int   `json:"order"`
	IsActive      *bool  `json:"is_active"`
}

// AboutPageResponse bundles the active about config with its child
// collections for the public about page
type AboutPageResponse struct {
	Config       model.AboutConfig              `json:"config"`
	Journey      []model.JourneyItem            `json:"journey"`
	Education    []model.EducationQualification `json:"education"`
	Achievements []model.Achievement            `json:"achievements"`
	Speaking     []model.SpeakingEngagement     `json:"speaking"`
}

// activeAboutConfig loads the active about config, creating a default
// active row when none exists
func activeAboutConfig(db *gorm.DB) (*model.AboutConfig, error) {
	var about model.AboutConfig
	err := db.Where("is_active = ?", true).Order("id asc").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		about = model.AboutConfig{IsActive: true}
		if err := db.Create(&about).Error; err != nil {
			return nil, err
		}
		return &about, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// GetAboutPage returns the active about config and its four child
// collections. The public view only includes active children; the
// admin view (?admin=true) includes everything owned by the active
// config.
func GetAboutPage(c echo.Context) error {
	log := logger.FromContext(c)
	admin := c.QueryParam("admin") == "true"
	db := database.GetDB()

	about, err := activeAboutConfig(db)
	if err != nil {
		log.Error("Failed to retrieve about config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve about page"})
	}

	resp := AboutPageResponse{
		Config:       *about,
		Journey:      []model.JourneyItem{},
		Education:    []model.EducationQualification{},
		Achievements: []model.Achievement{},
		Speaking:     []model.SpeakingEngagement{},
	}

	childQuery := func() *gorm.DB {
		q := db.Where("about_config_id = ?", about.ID).Order("display_order asc, created_at desc")
		if !admin {
			q = q.Where("is_active = ?", true)
		}
		return q
	}

	// Child lookups are independent; a failing one leaves its section
	// empty rather than failing the whole page
	if err := childQuery().Find(&resp.Journey).Error; err != nil {
		log.Warn("Failed to retrieve journey items", zap.Error(err))
	}
	if err := childQuery().Find(&resp.Education).Error; err != nil {
		log.Warn("Failed to retrieve education entries", zap.Error(err))
	}
	if err := childQuery().Find(&resp.Achievements).Error; err != nil {
		log.Warn("Failed to retrieve achievements", zap.Error(err))
	}
	if err := childQuery().Find(&resp.Speaking).Error; err != nil {
		log.Warn("Failed to retrieve speaking engagements", zap.Error(err))
	}

	return c.JSON(http.StatusOK, resp)
}

// UpdateAboutConfig merges the provided fields into the active about config
func UpdateAboutConfig(c echo.Context) error {
	log := logger.FromContext(c)

	var req AboutConfigRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var about model.AboutConfig
	if err := database.GetDB().Where("is_active = ?", true).Order("id asc").First(&about).Error; err != nil {
		log.Warn("Active about config not found", zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "About config not found"})
	}

	if req.Title != nil {
		about.Title = *req.Title
	}
	if req.Subtitle != nil {
		about.Subtitle = *req.Subtitle
	}
	if req.Bio != nil {
		about.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		about.ProfileImage = *req.ProfileImage
	}

	if err := database.GetDB().Save(&about).Error; err != nil {
		log.Error("Failed to update about config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update about config"})
	}

	log.Info("About config updated", zap.Uint("about_id", about.ID))
	prometheus.RecordContentOperation("about_config", "update")
	return c.JSON(http.StatusOK, about)
}

// ActivateAboutConfig makes the given about config the single active
// one, deactivating all siblings in the same transaction
func ActivateAboutConfig(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var about model.AboutConfig
	if err := database.GetDB().First(&about, "id = ?", id).Error; err != nil {
		log.Warn("About config not found", zap.String("about_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "About config not found"})
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AboutConfig{}).
			Where("id != ?", about.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&about).Update("is_active", true).Error
	})
	if err != nil {
		log.Error("Failed to activate about config", zap.Uint("about_id", about.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to activate about config"})
	}

	about.IsActive = true
	log.Info("About config activated", zap.Uint("about_id", about.ID))
	return c.JSON(http.StatusOK, about)
}

// resolveAboutConfigID returns the explicitly requested owning config
// or falls back to the active one
func resolveAboutConfigID(requested uint) (uint, error) {
	if requested != 0 {
		var about model.AboutConfig
		if err := database.GetDB().First(&about, "id = ?", requested).Error; err != nil {
			return 0, err
		}
		return about.ID, nil
	}
	about, err := activeAboutConfig(database.GetDB())
	if err != nil {
		return 0, err
	}
	return about.ID, nil
}

// CreateJourneyItem adds a journey entry under an about config,
// remapping the admin-form field names to storage names
func CreateJourneyItem(c echo.Context) error {
	log := logger.FromContext(c)

	var req JourneyItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	configID, err := resolveAboutConfigID(req.AboutConfigID)
	if err != nil {
		log.Warn("Owning about config not found", zap.Uint("about_config_id", req.AboutConfigID), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "About config not found"})
	}

	item := model.JourneyItem{
		AboutConfigID: configID,
		Period:        req.YearRange,
		Organization:  req.Company,
		Role:          req.Role,
		Description:   req.Description,
		IsActive:      true,
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := database.GetDB().Create(&item).Error; err != nil {
		log.Error("Failed to create journey item", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create journey item"})
	}

	log.Info("Journey item created", zap.Uint("item_id", item.ID))
	prometheus.RecordContentOperation("journey_item", "create")
	return c.JSON(http.StatusCreated, item)
}

// UpdateJourneyItem updates a journey entry, applying the same
// form-to-storage field remapping as create
func UpdateJourneyItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req JourneyItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("item_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var item model.JourneyItem
	if err := database.GetDB().First(&item, "id = ?", id).Error; err != nil {
		log.Warn("Journey item not found", zap.String("item_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Journey item not found"})
	}

	if req.YearRange != "" {
		item.Period = req.YearRange
	}
	if req.Company != "" {
		item.Organization = req.Company
	}
	if req.Role != "" {
		item.Role = req.Role
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&item).Error; err != nil {
		log.Error("Failed to update journey item", zap.String("item_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update journey item"})
	}

	log.Info("Journey item updated", zap.Uint("item_id", item.ID))
	prometheus.RecordContentOperation("journey_item", "update")
	return c.JSON(http.StatusOK, item)
}

// DeleteJourneyItem hard-deletes a journey entry
func DeleteJourneyItem(c echo.Context) error {
	return deleteAboutChild(c, "journey_item", &model.JourneyItem{})
}

// CreateEducation adds an education entry, remapping degree to qualification
func CreateEducation(c echo.Context) error {
	log := logger.FromContext(c)

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	configID, err := resolveAboutConfigID(req.AboutConfigID)
	if err != nil {
		log.Warn("Owning about config not found", zap.Uint("about_config_id", req.AboutConfigID), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "About config not found"})
	}

	entry := model.EducationQualification{
		AboutConfigID: configID,
		Qualification: req.Degree,
		Institution:   req.Institution,
		Year:          req.Year,
		Description:   req.Description,
		IsActive:      true,
	}
	if req.Order != nil {
		entry.Order = *req.Order
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := database.GetDB().Create(&entry).Error; err != nil {
		log.Error("Failed to create education entry", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create education entry"})
	}

	log.Info("Education entry created", zap.Uint("entry_id", entry.ID))
	prometheus.RecordContentOperation("education", "create")
	return c.JSON(http.StatusCreated, entry)
}

// UpdateEducation updates an education entry
func UpdateEducation(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req EducationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("entry_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var entry model.EducationQualification
	if err := database.GetDB().First(&entry, "id = ?", id).Error; err != nil {
		log.Warn("Education entry not found", zap.String("entry_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Education entry not found"})
	}

	if req.Degree != "" {
		entry.Qualification = req.Degree
	}
	if req.Institution != "" {
		entry.Institution = req.Institution
	}
	if req.Year != "" {
		entry.Year = req.Year
	}
	if req.Description != "" {
		entry.Description = req.Description
	}
	if req.Order != nil {
		entry.Order = *req.Order
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&entry).Error; err != nil {
		log.Error("Failed to update education entry", zap.String("entry_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update education entry"})
	}

	log.Info("Education entry updated", zap.Uint("entry_id", entry.ID))
	prometheus.RecordContentOperation("education", "update")
	return c.JSON(http.StatusOK, entry)
}

// DeleteEducation hard-deletes an education entry
func DeleteEducation(c echo.Context) error {
	return deleteAboutChild(c, "education", &model.EducationQualification{})
}

// CreateAchievement adds an achievement entry
func CreateAchievement(c echo.Context) error {
	log := logger.FromContext(c)

	var req AchievementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	configID, err := resolveAboutConfigID(req.AboutConfigID)
	if err != nil {
		log.Warn("Owning about config not found", zap.Uint("about_config_id", req.AboutConfigID), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "About config not found"})
	}

	achievement := model.Achievement{
		AboutConfigID: configID,
		Title:         req.Title,
		Description:   req.Description,
		Year:          req.Year,
		Icon:          req.Icon,
		IsActive:      true,
	}
	if req.Order != nil {
		achievement.Order = *req.Order
	}
	if req.IsActive != nil {
		achievement.IsActive = *req.IsActive
	}

	if err := database.GetDB().Create(&achievement).Error; err != nil {
		log.Error("Failed to create achievement", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create achievement"})
	}

	log.Info("Achievement created", zap.Uint("achievement_id", achievement.ID))
	prometheus.RecordContentOperation("achievement", "create")
	return c.JSON(http.StatusCreated, achievement)
}

// UpdateAchievement updates an achievement entry
func UpdateAchievement(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req AchievementRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("achievement_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var achievement model.Achievement
	if err := database.GetDB().First(&achievement, "id = ?", id).Error; err != nil {
		log.Warn("Achievement not found", zap.String("achievement_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Achievement not found"})
	}

	if req.Title != "" {
		achievement.Title = req.Title
	}
	if req.Description != "" {
		achievement.Description = req.Description
	}
	if req.Year != "" {
		achievement.Year = req.Year
	}
	if req.Icon != "" {
		achievement.Icon = req.Icon
	}
	if req.Order != nil {
		achievement.Order = *req.Order
	}
	if req.IsActive != nil {
		achievement.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&achievement).Error; err != nil {
		log.Error("Failed to update achievement", zap.String("achievement_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update achievement"})
	}

	log.Info("Achievement updated", zap.Uint("achievement_id", achievement.ID))
	prometheus.RecordContentOperation("achievement", "update")
	return c.JSON(http.StatusOK, achievement)
}

// DeleteAchievement hard-deletes an achievement entry
func DeleteAchievement(c echo.Context) error {
	return deleteAboutChild(c, "achievement", &model.Achievement{})
}

// CreateSpeaking adds a speaking engagement entry
func CreateSpeaking(c echo.Context) error {
	log := logger.FromContext(c)

	var req SpeakingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	configID, err := resolveAboutConfigID(req.AboutConfigID)
	if err != nil {
		log.Warn("Owning about config not found", zap.Uint("about_config_id", req.AboutConfigID), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "About config not found"})
	}

	engagement := model.SpeakingEngagement{
		AboutConfigID: configID,
		Title:         req.Title,
		Event:         req.Event,
		Year:          req.Year,
		Location:      req.Location,
		Description:   req.Description,
		IsActive:      true,
	}
	if req.Order != nil {
		engagement.Order = *req.Order
	}
	if req.IsActive != nil {
		engagement.IsActive = *req.IsActive
	}

	if err := database.GetDB().Create(&engagement).Error; err != nil {
		log.Error("Failed to create speaking engagement", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create speaking engagement"})
	}

	log.Info("Speaking engagement created", zap.Uint("engagement_id", engagement.ID))
	prometheus.RecordContentOperation("speaking", "create")
	return c.JSON(http.StatusCreated, engagement)
}

// UpdateSpeaking updates a speaking engagement entry
func UpdateSpeaking(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req SpeakingRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("engagement_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var engagement model.SpeakingEngagement
	if err := database.GetDB().First(&engagement, "id = ?", id).Error; err != nil {
		log.Warn("Speaking engagement not found", zap.String("engagement_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Speaking engagement not found"})
	}

	if req.Title != "" {
		engagement.Title = req.Title
	}
	if req.Event != "" {
		engagement.Event = req.Event
	}
	if req.Year != "" {
		engagement.Year = req.Year
	}
	if req.Location != "" {
		engagement.Location = req.Location
	}
	if req.Description != "" {
		engagement.Description = req.Description
	}
	if req.Order != nil {
		engagement.Order = *req.Order
	}
	if req.IsActive != nil {
		engagement.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&engagement).Error; err != nil {
		log.Error("Failed to update speaking engagement", zap.String("engagement_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update speaking engagement"})
	}

	log.Info("Speaking engagement updated", zap.Uint("engagement_id", engagement.ID))
	prometheus.RecordContentOperation("speaking", "update")
	return c.JSON(http.StatusOK, engagement)
}

// DeleteSpeaking hard-deletes a speaking engagement entry
func DeleteSpeaking(c echo.Context) error {
	return deleteAboutChild(c, "speaking", &model.SpeakingEngagement{})
}

// deleteAboutChild hard-deletes one about-page child record by ID.
// Children are always deleted individually; there is no cascade from
// the owning about config.
func deleteAboutChild(c echo.Context, resource string, target interface{}) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	result := database.GetDB().First(target, "id = ?", id)
	if result.Error != nil {
		log.Warn("Record not found", zap.String("resource", resource), zap.String("id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Record not found"})
	}

	result = database.GetDB().Delete(target)
	if result.Error != nil {
		log.Error("Failed to delete record", zap.String("resource", resource), zap.String("id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete record"})
	}

	log.Info("Record deleted", zap.String("resource", resource), zap.String("id", id))
	prometheus.RecordContentOperation(resource, "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Deleted successfully"})
}
