// handlers/auth.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MDYUS/quoteadmin-sub000/config"
	"github.com/MDYUS/quoteadmin-sub000/middleware"
	"github.com/MDYUS/quoteadmin-sub000/models"
)

type loginReq struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type codeLoginReq struct {
	Code string `json:"code"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type userPayload struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Role  string    `json:"role"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var u models.User
	if err := config.DB.Where("phone = ? AND is_active = ?", req.Phone, true).First(&u).Error; err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	issueToken(w, &u)
}

// LoginWithCode authenticates with a one-time numeric code. The code is
// consumed on success and can never be used again.
func LoginWithCode(w http.ResponseWriter, r *http.Request) {
	var req codeLoginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req.Code = strings.TrimSpace(req.Code)
	if req.Code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}

	var lc models.LoginCode
	if err := config.DB.Where("code = ? AND used = ?", req.Code, false).First(&lc).Error; err != nil {
		http.Error(w, "invalid or used code", http.StatusUnauthorized)
		return
	}

	var u models.User
	if err := config.DB.Where("id = ? AND is_active = ?", lc.UserID, true).First(&u).Error; err != nil {
		http.Error(w, "invalid or used code", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	lc.Used = true
	lc.UsedAt = &now
	if err := config.DB.Save(&lc).Error; err != nil {
		http.Error(w, "Failed to consume code: "+err.Error(), http.StatusInternalServerError)
		return
	}

	issueToken(w, &u)
}

func issueToken(w http.ResponseWriter, u *models.User) {
	token, err := middleware.GenerateToken(u.ID.String(), u.Role, u.Name, u.Phone)
	if err != nil {
		http.Error(w, "couldn't create token", http.StatusInternalServerError)
		return
	}
	out := loginResp{
		Token: token,
		User: userPayload{
			ID:    u.ID,
			Name:  u.Name,
			Phone: u.Phone,
			Role:  u.Role,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// GetCurrentUser returns the profile behind the presented token.
func GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	if claims == nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	resp := map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"phone": user.Phone,
		"email": user.Email,
		"role":  user.Role,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a staff account. Owner-only, wired under /admin.
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Phone == "" || req.Password == "" {
		http.Error(w, "phone and password are required", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = models.RoleStaff
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "error hashing password", http.StatusInternalServerError)
		return
	}
	u := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
	}
	if err := config.DB.Create(&u).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "phone already registered", http.StatusConflict)
		} else {
			http.Error(w, "Failed to create user: "+err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(userPayload{ID: u.ID, Name: u.Name, Phone: u.Phone, Role: u.Role})
}

func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	if err := config.DB.Where("is_active = ?", true).Order("created_at ASC").Find(&users).Error; err != nil {
		http.Error(w, "Failed to fetch users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]userPayload, len(users))
	for i, u := range users {
		out[i] = userPayload{ID: u.ID, Name: u.Name, Phone: u.Phone, Role: u.Role}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  out,
		"count": len(out),
	})
}
