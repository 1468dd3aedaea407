package check_delivery

import "fmt"

// validateRequest проверяет корректность входных данных
// Нужны либо обе координаты, либо идентификатор клиента для
// запроса позиции у сервиса геолокации
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	hasCoords := req.Lat != nil && req.Lon != nil
	if !hasCoords && req.ClientID == "" {
		return fmt.Errorf("%w: either coordinates or client id is required", ErrInvalidInput)
	}

	if hasCoords {
		if *req.Lat < -90 || *req.Lat > 90 {
			return fmt.Errorf("%w: latitude out of range", ErrInvalidInput)
		}
		if *req.Lon < -180 || *req.Lon > 180 {
			return fmt.Errorf("%w: longitude out of range", ErrInvalidInput)
		}
	}

	return nil
}
