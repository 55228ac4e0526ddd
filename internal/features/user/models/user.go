package models

// User is a system account. The address is always serialized as a plain
// string — empty when unset, never null.
// @Description System user account
type User struct {
	ID      int    `json:"id" example:"1"`
	Name    string `json:"name" example:"Cesar Ortiz"`
	Email   string `json:"email" example:"brccesar@gmail.com"`
	Phone   string `json:"phone" example:"+57 305 751 5403"`
	Address string `json:"address" example:"Calle 123 #45-67, Bogotá"`
}

// CreateUserRequest is the POST /api/users body. The id is always assigned
// by the repository.
type CreateUserRequest struct {
	Name    string `json:"name" binding:"required" example:"John Smith"`
	Email   string `json:"email" binding:"required" example:"john@example.com"`
	Phone   string `json:"phone" binding:"required" example:"3001234567"`
	Address string `json:"address" binding:"required" example:"Carrera 7 #10-20, Bogotá"`
}

// UpdateUserRequest is the PUT /api/users/{id} body; the path id wins over
// any id in the body.
type UpdateUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (r CreateUserRequest) ToUser() *User {
	return &User{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}

func (r UpdateUserRequest) ToUser(id int) *User {
	return &User{ID: id, Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}
