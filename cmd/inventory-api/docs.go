package main

// @title Inventory Management API
// @version 1.0
// @description REST API for categories, stock, inventory logs, suppliers and employees

// @contact.name API Support

// @license.name MIT

// @host localhost:3000
// @BasePath /

// @tag.name Categories
// @tag.description Product category endpoints

// @tag.name Inventory
// @tag.description In-stock inventory endpoints

// @tag.name OutOfStock
// @tag.description Out-of-stock inventory endpoints

// @tag.name InventoryLogs
// @tag.description Stock movement log endpoints

// @tag.name Suppliers
// @tag.description Supplier endpoints

// @tag.name Employees
// @tag.description Employee login and registration endpoints

// @tag.name Health
// @tag.description Health check endpoints
