package asset

// DefaultConfigTOML returns the default orrery TOML configuration
// Planet elements: semi-major axis in AU, eccentricity, sidereal period in days
// Mass in kg is informational, radius is the drawing size before cell scaling
const DefaultConfigTOML = `

# === Simulation ===
[simulation]
speed = 216000.0            # simulated seconds per real second
max_frame_ms = 250
max_substep_s = 3600.0
integrator = "semi-implicit-euler"
reference_body = "Earth"
epoch = "2000-01-01T12:00:00Z"

[camera]
min_zoom = 0.05
max_zoom = 400.0
zoom_step = 1.25
pan_step = 5.0
inner_zoom = 4.0

[trail]
capacity = 200

[hover]
margin = 2.0

[audio]
enabled = true
volume = 0.3

[metrics]
addr = ""


# === Bodies ===
[sun]
name = "Sun"
mass_kg = 1.989e30
radius = 8.0
color = [255, 255, 0]

[[planets]]
name = "Mercury"
a_au = 0.3871
e = 0.2056
period_days = 87.97
mass_kg = 3.301e23
radius = 2.0
color = [169, 169, 169]

[[planets]]
name = "Venus"
a_au = 0.7233
e = 0.0067
period_days = 224.70
mass_kg = 4.867e24
radius = 3.0
color = [255, 165, 0]

[[planets]]
name = "Earth"
a_au = 1.0
e = 0.0167
period_days = 365.25
mass_kg = 5.972e24
radius = 4.0
color = [0, 100, 255]

[[planets]]
name = "Mars"
a_au = 1.5234
e = 0.0934
period_days = 686.98
mass_kg = 6.39e23
radius = 3.0
color = [255, 100, 0]

[[planets]]
name = "Jupiter"
a_au = 5.2039
e = 0.0489
period_days = 4332.59
mass_kg = 1.898e27
radius = 6.0
color = [200, 150, 100]

[[planets]]
name = "Saturn"
a_au = 9.5522
e = 0.0565
period_days = 10759.22
mass_kg = 5.683e26
radius = 5.0
color = [250, 200, 100]

[[planets]]
name = "Uranus"
a_au = 19.1912
e = 0.0463
period_days = 30688.5
mass_kg = 8.681e25
radius = 4.0
color = [100, 200, 255]

[[planets]]
name = "Neptune"
a_au = 30.0668
e = 0.0086
period_days = 60182.0
mass_kg = 1.024e26
radius = 4.0
color = [0, 0, 255]

[[planets]]
name = "Pluto"
a_au = 39.4786
e = 0.2488
period_days = 90560.0
mass_kg = 1.309e22
radius = 2.0
color = [150, 100, 50]
`
