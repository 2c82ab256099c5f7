package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TrainComponentServiceInterface defines the interface for train component service
type TrainComponentServiceInterface interface {
	CreateComponent(req *CreateTrainComponentRequest) (*TrainComponentResponse, error)
	GetComponentByID(id uint) (*TrainComponentResponse, error)
	ListComponents(searchTerm string, pageNumber, pageSize int) (*TrainComponentListResponse, error)
	UpdateQuantity(id uint, quantity int) error
	DeleteComponent(id uint) error
}
