package dto

import (
	"minihotel/internal/domains/customer/model"
	"minihotel/shared"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
	gModel "minihotel/shared/model"
	"minihotel/shared/timezone"
	"strings"
)

type CreateCustomerRequest struct {
	FullName  string `json:"full_name" validate:"required,max=50"`
	Telephone string `json:"telephone" validate:"omitempty,max=12"`
	Email     string `json:"email"     validate:"required,email,max=50"`
	Birthday  string `json:"birthday"  validate:"required,dateonly"`
	Password  string `json:"password"  validate:"required,min=8,max=72"`
}

// ToModel builds the customer record. Emails are stored lowercased so
// lookups stay case-insensitive; hashedPassword must already be a bcrypt
// digest.
func (c *CreateCustomerRequest) ToModel(id int, hashedPassword, user string) (model.Customer, error) {
	birthday, err := timezone.Parse(constant.DateOnlyFormat, c.Birthday)
	if err != nil {
		return model.Customer{}, err
	}

	return model.Customer{
		ID:        id,
		FullName:  c.FullName,
		Telephone: c.Telephone,
		Email:     strings.ToLower(c.Email),
		Birthday:  birthday,
		Status:    model.StatusActive,
		Password:  hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateCustomerRequest struct {
	FullName  string `db:"full_name" json:"full_name" validate:"omitempty,max=50"`
	Telephone string `db:"telephone" json:"telephone" validate:"omitempty,max=12"`
	Birthday  string `json:"birthday"  validate:"omitempty,dateonly"`
	Status    int    `db:"status"    json:"status"    validate:"omitempty,oneof=1 2"`
}

type CreateCustomerResponse struct {
	ID int `json:"customer_id"`
}

type CustomerResponse struct {
	ID        int    `json:"customer_id"`
	FullName  string `json:"full_name"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
	Birthday  string `json:"birthday"`
	Status    int    `json:"status"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Telephone = model.Telephone
	r.Email = model.Email
	r.Birthday = model.Birthday.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
