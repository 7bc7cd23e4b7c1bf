package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// AutoCreateManufacturingOrders enables the listener that opens a
	// manufacturing order whenever a customer order is confirmed.
	AutoCreateManufacturingOrders bool
}
