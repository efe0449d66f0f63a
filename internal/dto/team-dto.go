package dto

type CreateTeamDTO struct {
	Name    string `json:"name" validate:"required"`
	Members string `json:"members"`
}

type TeamDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Members   string `json:"members"`
	CreatedAt string `json:"created_at"`
}
