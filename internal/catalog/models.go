package catalog

// Weather model names
const (
	ModelECMWF       = "ECMWF"
	ModelGFS05       = "GFS_0.5"
	ModelGFS025      = "GFS_0.25"
	ModelUKMET       = "UKMET"
	ModelNCEP        = "NCEP"
	ModelDWD         = "DWD"
	ModelMeteoFrance = "METEOFRANCE"
	ModelCMCC        = "CMCC"
	ModelJMA         = "JMA"
	ModelICON        = "ICON"
	ModelECCC        = "ECCC"
)

// DefaultModels is the pair selected when a caller names no models.
var DefaultModels = []string{ModelECMWF, ModelGFS05}

// ModelValues maps weather model names to their values
type ModelValues[T any] map[string]T

// GetForModel retrieves the value for a specific weather model
func (m ModelValues[T]) GetForModel(model string) (T, bool) {
	val, ok := m[model]
	return val, ok
}

// Models returns a slice of all model names in the map
func (m ModelValues[T]) Models() []string {
	models := make([]string, 0, len(m))
	for model := range m {
		models = append(models, model)
	}
	return models
}

// HasModel checks if a model exists in the map
func (m ModelValues[T]) HasModel(model string) bool {
	_, ok := m[model]
	return ok
}
