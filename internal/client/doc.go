// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the staff API.
//
// [App] parses a subcommand with its flags and calls the server through an
// adapter.StaffAPI:
//
//	signup -username NAME -email EMAIL [-password PASS]
//	login -email EMAIL [-password PASS]
//	employees list
//	employees get ID
//	employees create -first-name .. -last-name .. -email .. -position .. -salary .. -date YYYY-MM-DD -department ..
//	employees update ID field=value...
//	employees delete ID
//
// A password not given as a flag is read from the terminal without echo.
package client
