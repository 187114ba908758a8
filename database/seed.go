package database

import "github.com/apex/log"

// Seed rows use REPLACE INTO so a rerun converges to exactly this data:
// rows with matching primary keys are rewritten in full, rows added by
// operators outside the seeded id range are left alone.

const seedRoles = `
REPLACE INTO roles (id, name, description) VALUES
    (1, 'Super Admin', 'Full access to every module'),
    (2, 'Admin', 'Day-to-day administration without role management'),
    (3, 'Editor', 'Manages products, categories, tags and banners'),
    (4, 'Viewer', 'Read-only access')`

const seedPermissions = `
REPLACE INTO permissions (id, slug, name, category) VALUES
    (1, 'dashboard.view', 'View dashboard', 'Dashboard'),
    (2, 'products.view', 'View products', 'Products'),
    (3, 'products.create', 'Create products', 'Products'),
    (4, 'products.edit', 'Edit products', 'Products'),
    (5, 'products.delete', 'Delete products', 'Products'),
    (6, 'products.sync', 'Sync products from Shopee', 'Products'),
    (7, 'categories.view', 'View categories', 'Categories'),
    (8, 'categories.create', 'Create categories', 'Categories'),
    (9, 'categories.edit', 'Edit categories', 'Categories'),
    (10, 'categories.delete', 'Delete categories', 'Categories'),
    (11, 'tags.view', 'View tags', 'Tags'),
    (12, 'tags.create', 'Create tags', 'Tags'),
    (13, 'tags.edit', 'Edit tags', 'Tags'),
    (14, 'tags.delete', 'Delete tags', 'Tags'),
    (15, 'banners.view', 'View banners', 'Banners'),
    (16, 'banners.create', 'Create banners', 'Banners'),
    (17, 'banners.edit', 'Edit banners', 'Banners'),
    (18, 'banners.delete', 'Delete banners', 'Banners'),
    (19, 'users.view', 'View admin users', 'Admin Users'),
    (20, 'users.create', 'Create admin users', 'Admin Users'),
    (21, 'users.edit', 'Edit admin users', 'Admin Users'),
    (22, 'users.delete', 'Delete admin users', 'Admin Users'),
    (23, 'roles.view', 'View roles', 'Roles'),
    (24, 'roles.manage', 'Manage roles and permissions', 'Roles'),
    (25, 'settings.view', 'View settings', 'Settings'),
    (26, 'settings.edit', 'Edit settings', 'Settings'),
    (27, 'logs.view', 'View activity logs', 'Activity Logs'),
    (28, 'social.manage', 'Manage social media links', 'Social Media')`

const seedRolePermissions = `
REPLACE INTO role_permissions (role_id, permission_id) VALUES
    (1, 1), (1, 2), (1, 3), (1, 4), (1, 5), (1, 6), (1, 7),
    (1, 8), (1, 9), (1, 10), (1, 11), (1, 12), (1, 13), (1, 14),
    (1, 15), (1, 16), (1, 17), (1, 18), (1, 19), (1, 20), (1, 21),
    (1, 22), (1, 23), (1, 24), (1, 25), (1, 26), (1, 27), (1, 28),
    (2, 1), (2, 2), (2, 3), (2, 4), (2, 5), (2, 6), (2, 7),
    (2, 8), (2, 9), (2, 10), (2, 11), (2, 12), (2, 13), (2, 14),
    (2, 15), (2, 16), (2, 17), (2, 18), (2, 19), (2, 25), (2, 27),
    (3, 1), (3, 2), (3, 3), (3, 4), (3, 7), (3, 11), (3, 12), (3, 15),
    (4, 1), (4, 2), (4, 7), (4, 11), (4, 15)`

const seedAdminUsers = `
REPLACE INTO admin_users (id, username, email, full_name, password_hash, status, role_id) VALUES
    (1, 'admin', 'admin@shopee-affiliate.local', 'System Administrator', 'f84c9771c05f8bffe4c0211224c88e41:51505ebee3fc45efe95101369e511a21451a6edb92e5124a5268cde1a93d78ed1f6f1b2af033b01edec0b2cef0bea7c2f92b2fde48b8fb5a559a1be6191cdb42', 'active', 1),
    (2, 'manager', 'manager@shopee-affiliate.local', 'Site Manager', '7b1d2f5b09420e391f8672764f649e94:8f2c9cafb9477ed15a02c20847c594e45b76c211bfd26a8a99f7df746688bd9dd8c9666757092ea4746cc57a7ccb5871fd7746f0563f038d709f57626d689fec', 'active', 2),
    (3, 'editor', 'editor@shopee-affiliate.local', 'Content Editor', 'b9ac4862511dfb14b1ae977c42a6bb4f:8bcff0655cad306a30c6f12352aefa80a074be2b175a1bacd5cb58e085bdf40816208dc93c1b77161c4abee1202b0d1ae80b9a712a2b9bc9e166213700db1664', 'active', 3)`

const seedCategories = `
REPLACE INTO categories (id, name, is_active) VALUES
    (1, 'Electronics', 1),
    (2, 'Fashion', 1),
    (3, 'Beauty & Personal Care', 1),
    (4, 'Home & Living', 1),
    (5, 'Health', 1),
    (6, 'Sports & Outdoors', 1),
    (7, 'Baby & Toys', 1)`

const seedTags = `
REPLACE INTO tags (id, name, is_active) VALUES
    (1, 'Hot Deal', 1),
    (2, 'Best Seller', 1)`

const seedBannerPositions = `
REPLACE INTO banner_positions (id, name, width, height, is_active) VALUES
    (1, 'home_hero', 1200, 400, 1),
    (2, 'home_sidebar', 300, 250, 1),
    (3, 'category_top', 970, 90, 1),
    (4, 'footer_strip', 728, 90, 1)`

const seedBannerCampaigns = `
REPLACE INTO banner_campaigns (id, name, start_date, end_date, is_active) VALUES
    (1, '12.12 Mega Sale', '2025-12-01 00:00:00', '2025-12-15 23:59:59', 1)`

const seedBanners = `
REPLACE INTO banners (id, title, position_id, campaign_id, image_url, target_url, sort_order, open_new_tab, is_active) VALUES
    (1, '12.12 Mega Sale Hero', 1, 1, 'https://cdn.shopee-affiliate.local/banners/1212-hero.jpg', 'https://shopee.co.th/m/12-12', 1, 1, 1),
    (2, 'Daily Flash Deals', 2, NULL, 'https://cdn.shopee-affiliate.local/banners/flash-deals.jpg', '/flash-sale', 1, 0, 1),
    (3, 'Top Electronics Picks', 3, NULL, 'https://cdn.shopee-affiliate.local/banners/electronics-top.jpg', '/category/electronics', 1, 0, 1)`

const seedSocialMedia = `
REPLACE INTO social_media (id, name, icon_url, link_url, is_active, sort_order) VALUES
    (1, 'Facebook', 'https://cdn.shopee-affiliate.local/icons/facebook.svg', 'https://facebook.com/shopeeaffiliate', 1, 1),
    (2, 'Instagram', 'https://cdn.shopee-affiliate.local/icons/instagram.svg', 'https://instagram.com/shopeeaffiliate', 1, 2),
    (3, 'TikTok', 'https://cdn.shopee-affiliate.local/icons/tiktok.svg', 'https://tiktok.com/@shopeeaffiliate', 1, 3),
    (4, 'YouTube', 'https://cdn.shopee-affiliate.local/icons/youtube.svg', 'https://youtube.com/@shopeeaffiliate', 1, 4)`

const seedSettings = `
REPLACE INTO settings (id, site_name, site_description, contact_email, maintenance_mode) VALUES
    (1, 'Shopee Affiliate Deals', 'Curated Shopee deals with affiliate tracking', 'contact@shopee-affiliate.local', 0)`

// seedSteps in referential dependency order: roles and permissions before
// their join table and before the users that reference roles; positions and
// campaigns before banners.
var seedSteps = []step{
	{"seed roles", seedRoles},
	{"seed permissions", seedPermissions},
	{"seed role_permissions", seedRolePermissions},
	{"seed admin_users", seedAdminUsers},
	{"seed categories", seedCategories},
	{"seed tags", seedTags},
	{"seed banner_positions", seedBannerPositions},
	{"seed banner_campaigns", seedBannerCampaigns},
	{"seed banners", seedBanners},
	{"seed social_media", seedSocialMedia},
	{"seed settings", seedSettings},
}

// ApplySeed writes the reference rows and returns the number of failed
// steps. Like the schema phase it never aborts mid-way.
func (d *Database) ApplySeed() int {
	log.Info("Seeding reference data...")
	failed := 0
	for _, s := range seedSteps {
		if !d.execStep(s.stmt, s.desc) {
			failed++
		}
	}
	return failed
}
