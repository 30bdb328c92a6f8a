package domain

// EnvironmentalSignal holds the four synthesized inputs to the safety score.
// CrowdDensity and Lighting range over [0,100] (higher is safer), Incidents
// over [0,10] and WeatherRisk over [0,100] (higher is less safe).
// Derived deterministically from a coordinate, never persisted.
type EnvironmentalSignal struct {
	CrowdDensity int
	Lighting     int
	Incidents    int
	WeatherRisk  int
}
