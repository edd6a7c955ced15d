package streetnames

// AccessType is an OSM key restricting who may use a way
type AccessType uint16

const (
	ACCESS_HIGHWAY = AccessType(iota + 1)
	ACCESS_MOTOR_VEHICLE
	ACCESS_MOTORCAR
	// generic `access` key
	ACCESS_OSM_ACCESS
	ACCESS_SERVICE
	ACCESS_FOOT
	ACCESS_UNDEFINED = AccessType(0)
)

func (iotaIdx AccessType) String() string {
	return [...]string{"undefined", "highway", "motor_vehicle", "motorcar", "access", "service", "foot"}[iotaIdx]
}
